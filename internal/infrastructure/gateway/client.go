package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zamretail/smartinvoice/pkg/config"
	"github.com/zamretail/smartinvoice/pkg/logger"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// Client talks to the VSDC gateway. All calls are synchronous; the caller's
// context and the configured timeout bound each request.
type Client struct {
	http *http.Client
	cfg  config.GatewayConfig
	log  *logger.Logger
}

// NewClient builds a gateway client. A TimeoutSeconds of zero leaves the
// HTTP client unbounded.
func NewClient(cfg config.GatewayConfig, log *logger.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		cfg:  cfg,
		log:  log.Component("gateway"),
	}
}

// post serializes the payload, performs the exchange and decodes the
// envelope. Non-2xx statuses become an HTTPError; the resultCd is not
// inspected here.
func (c *Client) post(ctx context.Context, url string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("url", url).RawJSON("payload", body).Msg("posting to gateway")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("gateway responded")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var env Response
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}

// postChecked is post plus the resultCd check. Anything but 000 becomes a
// BusinessError.
func (c *Client) postChecked(ctx context.Context, url string, payload any) (*Response, error) {
	env, err := c.post(ctx, url, payload)
	if err != nil {
		return nil, err
	}
	if env.ResultCd != zra.ResultCodeSuccess {
		return nil, &BusinessError{Code: env.ResultCd, Message: env.ResultMsg}
	}
	return env, nil
}

// SubmitSales posts an invoice, credit note or debit note. On success it
// returns the receipt block, or nil when the gateway acknowledged without
// data (logged, not fatal).
func (c *Client) SubmitSales(ctx context.Context, doc *SalesInvoice) (*ReceiptResult, string, error) {
	env, err := c.postChecked(ctx, c.cfg.SalesEndpoint, doc)
	if err != nil {
		return nil, "", err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		c.log.Warn().Str("cisInvcNo", doc.CisInvcNo).Msg("sales accepted but no receipt data returned")
		return nil, env.ResultMsg, nil
	}

	var receipt ReceiptResult
	if err := json.Unmarshal(env.Data, &receipt); err != nil {
		return nil, "", fmt.Errorf("decode receipt data: %w", err)
	}
	return &receipt, env.ResultMsg, nil
}

// SubmitStockItems reports a physical movement. Only the HTTP exchange is
// checked; the caller decides whether a bad resultCd aborts the transaction.
func (c *Client) SubmitStockItems(ctx context.Context, payload *StockItems) (*Response, error) {
	return c.post(ctx, c.cfg.StockIOEndpoint, payload)
}

// SubmitStockMaster reports residual on-hand quantities.
func (c *Client) SubmitStockMaster(ctx context.Context, payload *StockMaster) (*Response, error) {
	return c.post(ctx, c.cfg.StockMasterEndpoint, payload)
}

// RegisterItem creates an item on the gateway.
func (c *Client) RegisterItem(ctx context.Context, payload *ItemRegistration) (*Response, error) {
	return c.postChecked(ctx, c.cfg.ItemSaveEndpoint, payload)
}

// UpdateItem updates a registered item.
func (c *Client) UpdateItem(ctx context.Context, payload *ItemRegistration) (*Response, error) {
	return c.postChecked(ctx, c.cfg.ItemUpdateEndpoint, payload)
}

// SubmitItemComposition declares a bill-of-materials link.
func (c *Client) SubmitItemComposition(ctx context.Context, payload *ItemComposition) (*Response, error) {
	return c.post(ctx, c.cfg.ItemCompositionEndpoint, payload)
}

// FetchPurchaseSales pulls supplier-reported sales newer than the watermark.
func (c *Client) FetchPurchaseSales(ctx context.Context, req *FetchRequest) (*PurchaseSaleList, error) {
	env, err := c.postChecked(ctx, c.cfg.PurchaseSelectEndpoint, req)
	if err != nil {
		return nil, err
	}
	var list PurchaseSaleList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("decode purchase sales: %w", err)
	}
	return &list, nil
}

// ConfirmPurchase posts the local accept/reject decision for a supplier sale.
func (c *Client) ConfirmPurchase(ctx context.Context, payload *PurchaseConfirmation) (*Response, error) {
	return c.post(ctx, c.cfg.PurchaseEndpoint, payload)
}

// FetchImports pulls customs declarations newer than the watermark.
func (c *Client) FetchImports(ctx context.Context, req *FetchRequest) (*ImportItemList, error) {
	env, err := c.postChecked(ctx, c.cfg.ImportSelectEndpoint, req)
	if err != nil {
		return nil, err
	}
	var list ImportItemList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("decode import items: %w", err)
	}
	return &list, nil
}

// UpdateImportItems posts approval or rejection of declaration lines.
func (c *Client) UpdateImportItems(ctx context.Context, payload *ImportUpdate) (*Response, error) {
	return c.post(ctx, c.cfg.ImportUpdateEndpoint, payload)
}

// FetchClassifications pulls the item classification catalogue.
func (c *Client) FetchClassifications(ctx context.Context, req *FetchRequest) (*ClassificationList, error) {
	env, err := c.postChecked(ctx, c.cfg.ClassificationEndpoint, req)
	if err != nil {
		return nil, err
	}
	var list ClassificationList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("decode classifications: %w", err)
	}
	return &list, nil
}

// FetchCommonCodes pulls the unit/country/code catalogues.
func (c *Client) FetchCommonCodes(ctx context.Context, req *FetchRequest) (*CodeList, error) {
	env, err := c.postChecked(ctx, c.cfg.CommonCodesEndpoint, req)
	if err != nil {
		return nil, err
	}
	var list CodeList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("decode common codes: %w", err)
	}
	return &list, nil
}
