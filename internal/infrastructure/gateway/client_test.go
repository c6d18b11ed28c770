package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamretail/smartinvoice/pkg/config"
	"github.com/zamretail/smartinvoice/pkg/logger"
)

func testClient(url string) *Client {
	cfg := config.GatewayConfig{
		SalesEndpoint:          url,
		StockIOEndpoint:        url,
		StockMasterEndpoint:    url,
		ItemSaveEndpoint:       url,
		ItemUpdateEndpoint:     url,
		PurchaseEndpoint:       url,
		PurchaseSelectEndpoint: url,
		ImportSelectEndpoint:   url,
		ImportUpdateEndpoint:   url,
		ClassificationEndpoint: url,
		CommonCodesEndpoint:    url,
		TimeoutSeconds:         5,
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return NewClient(cfg, log)
}

func TestSubmitSales_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var doc map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "INV/2025/08/14/09:30:05/42", doc["cisInvcNo"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"resultCd":  "000",
			"resultMsg": "It is succeeded",
			"resultDt":  "20250814093006",
			"data": map[string]any{
				"rcptNo":           4217,
				"intrlData":        "ABCD-EFGH",
				"rcptSign":         "SIGN1234",
				"vsdcRcptPbctDate": "20250814093006",
				"sdcId":            "SDC0010000001",
				"mrcNo":            "MRC001",
				"qrCodeUrl":        "https://sandbox.zra.org.zm/qr?x=1",
			},
		})
	}))
	defer srv.Close()

	receipt, msg, err := testClient(srv.URL).SubmitSales(context.Background(), BuildSales(testInput()))

	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, int64(4217), receipt.RcptNo)
	assert.Equal(t, "SIGN1234", receipt.RcptSign)
	assert.Equal(t, "https://sandbox.zra.org.zm/qr?x=1", receipt.QRCodeURL)
	assert.Equal(t, "It is succeeded", msg)
}

func TestSubmitSales_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	receipt, _, err := testClient(srv.URL).SubmitSales(context.Background(), BuildSales(testInput()))

	require.Error(t, err)
	assert.Nil(t, receipt)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}

func TestSubmitSales_BusinessError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resultCd":  "881",
			"resultMsg": "Invalid TPIN",
		})
	}))
	defer srv.Close()

	receipt, _, err := testClient(srv.URL).SubmitSales(context.Background(), BuildSales(testInput()))

	require.Error(t, err)
	assert.Nil(t, receipt)
	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "881", bizErr.Code)
	assert.Equal(t, "Invalid TPIN", bizErr.Message)
}

func TestSubmitSales_SuccessWithoutData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resultCd":  "000",
			"resultMsg": "It is succeeded",
			"data":      nil,
		})
	}))
	defer srv.Close()

	receipt, msg, err := testClient(srv.URL).SubmitSales(context.Background(), BuildSales(testInput()))

	// Accepted without a receipt block is a soft condition, not an error.
	require.NoError(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, "It is succeeded", msg)
}

func TestSubmitStockItems_DoesNotInspectResultCd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resultCd":  "901",
			"resultMsg": "Stock not found",
		})
	}))
	defer srv.Close()

	payload := BuildStockItems(testInput(), "11", "Normal Sale")
	env, err := testClient(srv.URL).SubmitStockItems(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "901", env.ResultCd)
	assert.Equal(t, "Stock not found", env.ResultMsg)
}

func TestFetchClassifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resultCd":  "000",
			"resultMsg": "ok",
			"data": map[string]any{
				"itemClsList": []map[string]any{
					{"itemClsCd": "50102517", "itemClsNm": "Flours or meals or flakes", "itemClsLvl": 4, "taxTyCd": "B", "useYn": "Y"},
				},
			},
		})
	}))
	defer srv.Close()

	list, err := testClient(srv.URL).FetchClassifications(context.Background(), &FetchRequest{
		Tpin: "1234567890", BhfID: "000", LastReqDt: "20240105210300",
	})

	require.NoError(t, err)
	require.Len(t, list.ItemClsList, 1)
	assert.Equal(t, "50102517", list.ItemClsList[0].ItemClsCd)
	assert.Equal(t, 4, list.ItemClsList[0].ItemClsLvl)
	assert.Equal(t, "Y", list.ItemClsList[0].UseYn)
}

func TestFetchPurchaseSales(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req FetchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "20240105210300", req.LastReqDt)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"resultCd":  "000",
			"resultMsg": "ok",
			"data": map[string]any{
				"saleList": []map[string]any{
					{
						"spplrTpin":   "1012345678",
						"spplrNm":     "Lusaka Wholesale",
						"spplrInvcNo": 991,
						"totAmt":      232.0,
						"itemList": []map[string]any{
							{"itemSeq": 1, "itemNm": "Cooking oil 2L", "qty": 4},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	list, err := testClient(srv.URL).FetchPurchaseSales(context.Background(), &FetchRequest{
		Tpin: "1234567890", BhfID: "000", LastReqDt: "20240105210300",
	})

	require.NoError(t, err)
	require.Len(t, list.SaleList, 1)
	assert.Equal(t, "Lusaka Wholesale", list.SaleList[0].SpplrNm)
	assert.Equal(t, int64(991), list.SaleList[0].SpplrInvcNo)
	require.Len(t, list.SaleList[0].ItemList, 1)
	assert.Equal(t, "Cooking oil 2L", list.SaleList[0].ItemList[0].ItemNm)
}
