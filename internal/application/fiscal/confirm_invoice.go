package fiscal

import (
	"context"
	"errors"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/fiscal"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// ConfirmInvoice fiscalizes a posted document: it builds the gateway payload
// for the document kind, submits it synchronously, writes the receipt back
// and reports the stock movement. The whole flow runs inside the caller's
// business transaction; a hard failure before reconciliation leaves the
// document untouched.
func (s *Service) ConfirmInvoice(ctx context.Context, invoiceID string, user entity.User) (*entity.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	switch inv.MoveType {
	case entity.MoveOutInvoice, entity.MoveOutRefund, entity.MoveInRefund:
	default:
		return nil, fmt.Errorf("%w: move type %q is not fiscalized", domain.ErrInvalidInput, inv.MoveType)
	}

	// Fail before any network traffic: every line needs a tax assignment.
	for _, line := range inv.Lines {
		if line.Tax == nil {
			return nil, fmt.Errorf("%w: set taxes on all lines before confirming %s", domain.ErrMissingTax, inv.Name)
		}
	}

	s.enrichFromSalesOrder(ctx, inv)

	rate, err := s.exchangeRate(ctx, inv.Currency, s.company.Currency)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, inv.CustomerID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	lines, stockable, err := s.resolveLines(ctx, inv)
	if err != nil {
		return nil, err
	}

	number, err := s.fiscalNumber(ctx, inv)
	if err != nil {
		return nil, err
	}
	inv.FiscalNumber = number

	in := gateway.DocumentInput{
		Invoice:      inv,
		Customer:     customer,
		Lines:        lines,
		Company:      s.company,
		User:         user,
		FiscalNumber: number,
		Now:          s.now().In(s.loc),
		ExchangeRate: rate,
	}

	var (
		doc         *gateway.SalesInvoice
		sarTyCd     string
		stockRemark string
		incoming    bool
	)
	switch inv.MoveType {
	case entity.MoveOutInvoice:
		doc = gateway.BuildSales(in)
		sarTyCd, stockRemark = zra.StockOutNormal, "Normal Sale"
	case entity.MoveOutRefund:
		orgNo, err := s.originalReceipt(ctx, inv)
		if err != nil {
			return nil, err
		}
		doc = gateway.BuildCreditNote(in, orgNo)
		sarTyCd, stockRemark, incoming = zra.StockInCreditNote, "Credit Note", true
	case entity.MoveInRefund:
		orgNo, err := s.originalReceipt(ctx, inv)
		if err != nil {
			return nil, err
		}
		doc = gateway.BuildDebitNote(in, orgNo)
		sarTyCd, stockRemark = zra.StockOutDebitNote, "Debit Note"
	}

	receipt, msg, err := s.gw.SubmitSales(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := s.reconcile(ctx, inv, receipt, msg); err != nil {
		return nil, err
	}

	if len(stockable) > 0 {
		stockIn := in
		stockIn.Lines = stockable
		if err := s.reportStock(ctx, stockIn, sarTyCd, stockRemark, incoming); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

// resolveLines pairs each document line with its item master record and
// splits out the stockable subset. Service items appear on the sales payload
// but never on stock reports.
func (s *Service) resolveLines(ctx context.Context, inv *entity.Invoice) (all, stockable []gateway.ResolvedLine, err error) {
	for _, line := range inv.Lines {
		item, err := s.items.GetByID(ctx, line.ItemID)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve item for line %s: %w", line.ID, err)
		}

		rl := gateway.ResolvedLine{Line: line, Item: item}
		all = append(all, rl)
		if item.Stockable() {
			stockable = append(stockable, rl)
		}
	}
	return all, stockable, nil
}

// fiscalNumber returns the persisted gateway identifier, deriving it on first
// use. The sequence component comes from the document's own name when the
// name follows the INV pattern, otherwise from the shared counter. Once
// derived the number sticks: retries present the same identifier.
func (s *Service) fiscalNumber(ctx context.Context, inv *entity.Invoice) (string, error) {
	if inv.FiscalNumber != "" {
		return inv.FiscalNumber, nil
	}

	seq, ok := fiscal.SequenceFromName(inv.Name)
	if !ok {
		var err error
		seq, err = s.sequences.NextFiscal(ctx)
		if err != nil {
			return "", fmt.Errorf("next fiscal sequence: %w", err)
		}
	}

	return fiscal.Number(s.now().In(s.loc), seq), nil
}

// originalReceipt resolves the fiscal receipt number of the document being
// reversed or adjusted, looked up by the note's reference field.
func (s *Service) originalReceipt(ctx context.Context, inv *entity.Invoice) (int64, error) {
	if inv.Ref == "" {
		return 0, fmt.Errorf("%w: %s has no reference to an original document", domain.ErrMissingReceiptNumber, inv.Name)
	}

	original, err := s.invoices.GetByName(ctx, inv.Ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("%w: original document %s not found", domain.ErrMissingReceiptNumber, inv.Ref)
		}
		return 0, err
	}
	if original.ReceiptNo == nil {
		return 0, fmt.Errorf("%w: original document %s was never fiscalized", domain.ErrMissingReceiptNumber, inv.Ref)
	}
	return *original.ReceiptNo, nil
}

// reportStock posts the movement and the residual quantities, then mutates
// the local ledger. Residuals are computed from the pre-mutation on-hand
// reads. Gateway failures here are logged and swallowed unless strict stock
// mode is on; the sales receipt is already reconciled at this point.
func (s *Service) reportStock(ctx context.Context, in gateway.DocumentInput, sarTyCd, remark string, incoming bool) error {
	itemsPayload := gateway.BuildStockItems(in, sarTyCd, remark)
	if err := s.submitStockPayload(ctx, in.Invoice, "stock items", func() (*gateway.Response, error) {
		return s.gw.SubmitStockItems(ctx, itemsPayload)
	}); err != nil {
		return err
	}

	balances := make([]gateway.StockBalance, 0, len(in.Lines))
	for _, rl := range in.Lines {
		onHand, err := s.stock.OnHand(ctx, rl.Item.ID)
		if err != nil {
			return fmt.Errorf("read on-hand for %s: %w", rl.Item.ItemCode, err)
		}
		balances = append(balances, gateway.StockBalance{
			ItemCd: rl.Item.ItemCode,
			RsdQty: gateway.ResidualQuantity(onHand, rl.Line.Quantity, incoming),
		})
	}

	masterPayload := gateway.BuildStockMaster(in.Company, in.User, balances)
	if err := s.submitStockPayload(ctx, in.Invoice, "stock master", func() (*gateway.Response, error) {
		return s.gw.SubmitStockMaster(ctx, masterPayload)
	}); err != nil {
		return err
	}

	// Ledger mutation happens last so the reported residuals reflect the
	// pre-movement reads.
	for _, rl := range in.Lines {
		delta := rl.Line.Quantity
		if !incoming {
			delta = delta.Neg()
		}
		if _, err := s.stock.ApplyDelta(ctx, rl.Item.ID, delta); err != nil {
			return fmt.Errorf("apply stock delta for %s: %w", rl.Item.ItemCode, err)
		}
	}
	return nil
}

// stockCallResult folds a business rejection into the error path: the stock
// endpoints answer 2xx with a non-success resultCd when the gateway refuses
// the payload, and that refusal must fall under the same policy as a failed
// exchange.
func stockCallResult(env *gateway.Response, err error) error {
	if err != nil {
		return err
	}
	if env.ResultCd != zra.ResultCodeSuccess {
		return &gateway.BusinessError{Code: env.ResultCd, Message: env.ResultMsg}
	}
	return nil
}

// submitStockPayload runs one stock call under the configured error policy.
func (s *Service) submitStockPayload(ctx context.Context, inv *entity.Invoice, kind string, call func() (*gateway.Response, error)) error {
	env, callErr := call()
	if err := stockCallResult(env, callErr); err != nil {
		if s.strictStock {
			return fmt.Errorf("submit %s: %w", kind, err)
		}
		s.log.Error().Err(err).Str("invoice", inv.Name).Str("kind", kind).Msg("stock submission failed, continuing")
		_ = s.invoices.AppendNote(ctx, inv.ID, fmt.Sprintf("Error during %s API call: %v", kind, err))
		return nil
	}

	s.log.Info().Str("invoice", inv.Name).Str("kind", kind).Str("resultMsg", env.ResultMsg).Msg("stock payload accepted")
	_ = s.invoices.AppendNote(ctx, inv.ID, fmt.Sprintf("Save %s API response: %s", kind, env.ResultMsg))
	return nil
}
