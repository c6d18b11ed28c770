package gateway

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/fiscal"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

func testInput() DocumentInput {
	return DocumentInput{
		Invoice: &entity.Invoice{
			ID:          "inv-1",
			Name:        "INV/2025/00042",
			MoveType:    entity.MoveOutInvoice,
			InvoiceDate: time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
			Currency:    "ZMW",
			PaymentType: zra.PaymentCash,
		},
		Customer: &entity.Customer{ID: "cust-1", Name: "Kalomo Traders", TPIN: "2001234567"},
		Lines: []ResolvedLine{
			{
				Line: entity.InvoiceLine{
					Quantity:    decimal.NewFromInt(2),
					UnitPrice:   decimal.NewFromInt(100),
					DiscountPct: decimal.NewFromInt(10),
					Tax:         &entity.Tax{Category: fiscal.CategoryA, Rate: decimal.NewFromInt(16)},
				},
				Item: &entity.Item{
					ID:                 "item-1",
					Name:               "Maize meal 25kg",
					ItemCode:           "ZM2NTBA0000001",
					ClassificationCode: "50102517",
					PackagingUnitCode:  "NT",
					QuantityUnitCode:   "BA",
				},
			},
		},
		Company:      entity.Company{Name: "Zam Retail", TPIN: "1234567890", BranchID: "000", SdcID: "SDC0010000001", Currency: "ZMW"},
		User:         entity.User{ID: "7", Name: "Chileshe"},
		FiscalNumber: "INV/2025/08/14/09:30:05/42",
		Now:          time.Date(2025, 8, 14, 9, 30, 5, 0, time.UTC),
		ExchangeRate: decimal.NewFromInt(1),
	}
}

func TestBuildSales_ExactAmounts(t *testing.T) {
	doc := BuildSales(testInput())

	require.Len(t, doc.ItemList, 1)
	line := doc.ItemList[0]

	// qty=2, price=100, 10% discount, 16% VAT.
	assert.Equal(t, "200", line.SplyAmt.String())
	assert.Equal(t, "20", line.DcAmt.String())
	assert.Equal(t, "155.1724", line.VatTaxblAmt.StringFixed(4))
	assert.Equal(t, "24.8276", line.VatAmt.StringFixed(4))
	assert.Equal(t, "180", line.TotAmt.String())

	assert.Equal(t, "155.1724", doc.TaxblAmtA.StringFixed(4))
	assert.Equal(t, "24.8276", doc.TaxAmtA.StringFixed(4))
	assert.Equal(t, "155.1724", doc.TotTaxblAmt.StringFixed(4))
	assert.Equal(t, "24.8276", doc.TotTaxAmt.StringFixed(4))
	assert.Equal(t, "180.0000", doc.TotAmt.StringFixed(4))
}

func TestBuildSales_HeaderFields(t *testing.T) {
	doc := BuildSales(testInput())

	assert.Equal(t, "1234567890", doc.Tpin)
	assert.Equal(t, "000", doc.BhfID)
	assert.Equal(t, int64(0), doc.OrgInvcNo)
	assert.Empty(t, doc.OrgSdcID)
	assert.Equal(t, "INV/2025/08/14/09:30:05/42", doc.CisInvcNo)
	assert.Equal(t, "2001234567", doc.CustTpin)
	assert.Equal(t, "Kalomo Traders", doc.CustNm)
	assert.Equal(t, zra.SaleTypeNormal, doc.SalesTyCd)
	assert.Equal(t, zra.ReceiptTypeSale, doc.RcptTyCd)
	assert.Equal(t, zra.PaymentCash, doc.PmtTyCd)
	assert.Equal(t, zra.SalesStatusConfirmed, doc.SalesSttsCd)
	assert.Equal(t, "20250814000000", doc.CfmDt)
	assert.Equal(t, "20250814", doc.SalesDt)
	assert.Equal(t, 1, doc.TotItemCnt)
	assert.Equal(t, "sales", doc.Remark)
	assert.Equal(t, "1", doc.SaleCtyCd)
	assert.Equal(t, "ZMW", doc.CurrencyTyCd)
	assert.Equal(t, "1", doc.ExchangeRt)

	// Fixed jurisdiction rate grid.
	assert.Equal(t, "16", doc.TaxRtA.String())
	assert.Equal(t, "16", doc.TaxRtB.String())
	assert.Equal(t, "10", doc.TaxRtF.String())
	assert.Equal(t, "1.5", doc.TaxRtTl.String())
	assert.True(t, doc.TaxRtC1.IsZero())
}

func TestBuildSales_TotalsEqualLineSums(t *testing.T) {
	in := testInput()
	in.Lines = append(in.Lines, ResolvedLine{
		Line: entity.InvoiceLine{
			Quantity:  decimal.NewFromInt(3),
			UnitPrice: decimal.RequireFromString("45.50"),
			Tax:       &entity.Tax{Category: fiscal.CategoryF, Rate: decimal.NewFromInt(10)},
		},
		Item: &entity.Item{ID: "item-2", Name: "Lodge night", ItemCode: "ZM3NTBA0000002", ClassificationCode: "90111503"},
	})

	doc := BuildSales(in)

	sumTaxable := decimal.Zero
	sumTax := decimal.Zero
	sumTotal := decimal.Zero
	for _, it := range doc.ItemList {
		sumTaxable = sumTaxable.Add(it.VatTaxblAmt)
		sumTax = sumTax.Add(it.VatAmt)
		sumTotal = sumTotal.Add(it.TotAmt)
	}

	assert.Equal(t, sumTaxable.Round(4).StringFixed(4), doc.TotTaxblAmt.StringFixed(4))
	assert.Equal(t, sumTax.Round(4).StringFixed(4), doc.TotTaxAmt.StringFixed(4))
	assert.Equal(t, sumTotal.Round(4).StringFixed(4), doc.TotAmt.StringFixed(4))
	assert.Equal(t, 2, doc.TotItemCnt)
}

func TestBuildSales_WalkInCustomerFallsBackToDefaultTPIN(t *testing.T) {
	in := testInput()
	in.Invoice.TPIN = ""
	in.Customer = &entity.Customer{ID: "cust-2", Name: "Walk-in"}

	doc := BuildSales(in)
	assert.Equal(t, zra.DefaultCustomerTPIN, doc.CustTpin)
}

func TestBuildCreditNote(t *testing.T) {
	in := testInput()
	in.Invoice.MoveType = entity.MoveOutRefund
	in.Invoice.ReversalReason = "06"

	doc := BuildCreditNote(in, 4217)

	assert.Equal(t, int64(4217), doc.OrgInvcNo)
	assert.Equal(t, "SDC0010000001", doc.OrgSdcID)
	assert.Equal(t, zra.ReceiptTypeRefund, doc.RcptTyCd)
	assert.Equal(t, zra.PaymentCash, doc.PmtTyCd)
	assert.Equal(t, "06", doc.RfdRsnCd)
	assert.Empty(t, doc.DbtRsnCd)
	assert.Equal(t, "credit note", doc.Remark)
}

func TestBuildCreditNote_DefaultReason(t *testing.T) {
	in := testInput()
	in.Invoice.MoveType = entity.MoveOutRefund

	doc := BuildCreditNote(in, 4217)
	assert.Equal(t, zra.DefaultReversalReason, doc.RfdRsnCd)
}

func TestBuildDebitNote(t *testing.T) {
	in := testInput()
	in.Invoice.MoveType = entity.MoveInRefund
	in.Invoice.DebitNoteReason = "03"

	doc := BuildDebitNote(in, 4218)

	assert.Equal(t, int64(4218), doc.OrgInvcNo)
	assert.Equal(t, zra.ReceiptTypeDebit, doc.RcptTyCd)
	assert.Equal(t, "03", doc.DbtRsnCd)
	assert.Empty(t, doc.RfdRsnCd)
	assert.Equal(t, "Debit note", doc.Remark)
}

func TestBuildDebitNote_DefaultReason(t *testing.T) {
	in := testInput()
	in.Invoice.MoveType = entity.MoveInRefund

	doc := BuildDebitNote(in, 4218)
	assert.Equal(t, zra.DefaultDebitNoteReason, doc.DbtRsnCd)
}
