package gateway

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/fiscal"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// ResolvedLine pairs a document line with its item master record. Builders
// need both: amounts come from the line, fiscal codes from the item.
type ResolvedLine struct {
	Line entity.InvoiceLine
	Item *entity.Item
}

// DocumentInput is everything a sales-family builder needs, resolved up
// front so building itself is pure.
type DocumentInput struct {
	Invoice      *entity.Invoice
	Customer     *entity.Customer
	Lines        []ResolvedLine
	Company      entity.Company
	User         entity.User
	FiscalNumber string
	Now          time.Time
	ExchangeRate decimal.Decimal
}

// customerTPIN resolves the reported buyer TPIN: document override, then the
// partner's registration, then the walk-in fallback.
func customerTPIN(in DocumentInput) string {
	if in.Invoice.TPIN != "" {
		return in.Invoice.TPIN
	}
	if in.Customer != nil {
		if tpin := in.Customer.EffectiveTPIN(); tpin != "" {
			return tpin
		}
	}
	return zra.DefaultCustomerTPIN
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// buildLineItems converts resolved lines to wire entries, one itemSeq per
// line in document order.
func buildLineItems(lines []ResolvedLine) []LineItem {
	items := make([]LineItem, 0, len(lines))
	for i, rl := range lines {
		amounts := fiscal.ComputeLine(rl.Line)

		category := ""
		if rl.Line.Tax != nil {
			category = rl.Line.Tax.Category
		}

		items = append(items, LineItem{
			ItemSeq:     i + 1,
			ItemCd:      rl.Item.ItemCode,
			ItemClsCd:   rl.Item.ClassificationCode,
			ItemNm:      rl.Item.Name,
			Bcd:         rl.Item.Barcode,
			PkgUnitCd:   rl.Item.PackagingUnitCode,
			Pkg:         rl.Line.Quantity,
			QtyUnitCd:   rl.Item.QuantityUnitCode,
			Qty:         rl.Line.Quantity.Round(4),
			Prc:         rl.Line.UnitPrice.Round(4),
			SplyAmt:     amounts.Supply.Round(4),
			DcRt:        rl.Line.DiscountPct,
			DcAmt:       amounts.Discount,
			TotDcAmt:    amounts.Discount,
			VatCatCd:    category,
			VatAmt:      amounts.Tax,
			TaxblAmt:    amounts.Taxable,
			VatTaxblAmt: amounts.Taxable,
			TaxAmt:      amounts.Tax,
			TotAmt:      amounts.Net.Round(4),
		})
	}
	return items
}

// sumLineTotals returns the header totals: each is the sum of the
// corresponding per-line wire values, so the invariant totAmt == sum of line
// totAmt holds by construction.
func sumLineTotals(items []LineItem) (taxable, tax, total decimal.Decimal) {
	for _, it := range items {
		taxable = taxable.Add(it.VatTaxblAmt)
		tax = tax.Add(it.VatAmt)
		total = total.Add(it.TotAmt)
	}
	return taxable.Round(4), tax.Round(4), total.Round(4)
}

// fillTaxGrids populates the per-category taxable, rate and tax header
// columns. The C amount buckets exist on the wire but only exact C-category
// lines feed them.
func fillTaxGrids(doc *SalesInvoice, lines []entity.InvoiceLine) {
	doc.TaxblAmtA = fiscal.TaxableAmount(lines, fiscal.CategoryA)
	doc.TaxblAmtB = fiscal.TaxableAmount(lines, fiscal.CategoryB)
	doc.TaxblAmtC = fiscal.TaxableAmount(lines, "C")
	doc.TaxblAmtC1 = fiscal.TaxableAmount(lines, fiscal.CategoryC1)
	doc.TaxblAmtC2 = fiscal.TaxableAmount(lines, fiscal.CategoryC2)
	doc.TaxblAmtC3 = fiscal.TaxableAmount(lines, fiscal.CategoryC3)
	doc.TaxblAmtD = fiscal.TaxableAmount(lines, fiscal.CategoryD)
	doc.TaxblAmtRvat = fiscal.TaxableAmount(lines, fiscal.CategoryRVAT)
	doc.TaxblAmtE = fiscal.TaxableAmount(lines, fiscal.CategoryE)
	doc.TaxblAmtF = fiscal.TaxableAmount(lines, fiscal.CategoryF)
	doc.TaxblAmtIpl1 = fiscal.TaxableAmount(lines, fiscal.CategoryIpl1)
	doc.TaxblAmtIpl2 = fiscal.TaxableAmount(lines, fiscal.CategoryIpl2)
	doc.TaxblAmtTl = fiscal.TaxableAmount(lines, fiscal.CategoryTl)
	doc.TaxblAmtEcm = fiscal.TaxableAmount(lines, fiscal.CategoryEcm)
	doc.TaxblAmtExeeg = fiscal.TaxableAmount(lines, fiscal.CategoryExeeg)
	doc.TaxblAmtTot = fiscal.TaxableAmount(lines, fiscal.CategoryTot)

	doc.TaxRtA = fiscal.ReportingRate(fiscal.CategoryA)
	doc.TaxRtB = fiscal.ReportingRate(fiscal.CategoryB)
	doc.TaxRtC1 = fiscal.ReportingRate(fiscal.CategoryC1)
	doc.TaxRtC2 = fiscal.ReportingRate(fiscal.CategoryC2)
	doc.TaxRtC3 = fiscal.ReportingRate(fiscal.CategoryC3)
	doc.TaxRtD = fiscal.ReportingRate(fiscal.CategoryD)
	doc.TaxRtRvat = fiscal.ReportingRate(fiscal.CategoryRVAT)
	doc.TaxRtE = fiscal.ReportingRate(fiscal.CategoryE)
	doc.TaxRtF = fiscal.ReportingRate(fiscal.CategoryF)
	doc.TaxRtIpl1 = fiscal.ReportingRate(fiscal.CategoryIpl1)
	doc.TaxRtIpl2 = fiscal.ReportingRate(fiscal.CategoryIpl2)
	doc.TaxRtTl = fiscal.ReportingRate(fiscal.CategoryTl)
	doc.TaxRtEcm = fiscal.ReportingRate(fiscal.CategoryEcm)
	doc.TaxRtExeeg = fiscal.ReportingRate(fiscal.CategoryExeeg)
	doc.TaxRtTot = decimal.Zero

	doc.TaxAmtA = fiscal.TaxAmount(lines, fiscal.CategoryA)
	doc.TaxAmtB = fiscal.TaxAmount(lines, fiscal.CategoryB)
	doc.TaxAmtC = fiscal.TaxAmount(lines, "C")
	doc.TaxAmtC1 = fiscal.TaxAmount(lines, fiscal.CategoryC1)
	doc.TaxAmtC2 = fiscal.TaxAmount(lines, fiscal.CategoryC2)
	doc.TaxAmtC3 = fiscal.TaxAmount(lines, fiscal.CategoryC3)
	doc.TaxAmtD = fiscal.TaxAmount(lines, fiscal.CategoryD)
	doc.TaxAmtRvat = fiscal.TaxAmount(lines, fiscal.CategoryRVAT)
	doc.TaxAmtE = fiscal.TaxAmount(lines, fiscal.CategoryE)
	doc.TaxAmtF = fiscal.TaxAmount(lines, fiscal.CategoryF)
	doc.TaxAmtIpl1 = fiscal.TaxAmount(lines, fiscal.CategoryIpl1)
	doc.TaxAmtIpl2 = fiscal.TaxAmount(lines, fiscal.CategoryIpl2)
	doc.TaxAmtTl = fiscal.TaxAmount(lines, fiscal.CategoryTl)
	doc.TaxAmtEcm = fiscal.TaxAmount(lines, fiscal.CategoryEcm)
	doc.TaxAmtExeeg = fiscal.TaxAmount(lines, fiscal.CategoryExeeg)
	doc.TaxAmtTot = fiscal.TaxAmount(lines, fiscal.CategoryTot)
}

// buildEnvelope assembles the fields shared by all three sales-family
// documents. Callers then set the per-kind fields.
func buildEnvelope(in DocumentInput) *SalesInvoice {
	items := buildLineItems(in.Lines)
	taxable, tax, total := sumLineTotals(items)

	rawLines := make([]entity.InvoiceLine, 0, len(in.Lines))
	for _, rl := range in.Lines {
		rawLines = append(rawLines, rl.Line)
	}

	currency := in.Invoice.Currency
	if currency == "" {
		currency = in.Company.Currency
	}

	doc := &SalesInvoice{
		Tpin:           in.Company.TPIN,
		BhfID:          in.Company.BranchID,
		CisInvcNo:      in.FiscalNumber,
		CustTpin:       customerTPIN(in),
		CustNm:         customerName(in),
		SalesTyCd:      zra.SaleTypeNormal,
		SalesSttsCd:    zra.SalesStatusConfirmed,
		CfmDt:          zra.FormatDateTime(in.Invoice.InvoiceDate),
		SalesDt:        zra.FormatDate(in.Now),
		TotItemCnt:     len(in.Lines),
		TotTaxblAmt:    taxable,
		TotTaxAmt:      tax,
		TotAmt:         total,
		PrchrAcptcYn:   zra.PurchaseAcceptanceNo,
		RegrID:         in.User.ID,
		RegrNm:         in.User.Name,
		ModrID:         in.User.ID,
		ModrNm:         in.User.Name,
		SaleCtyCd:      zra.SaleCountryCode,
		LpoNumber:      optional(in.Invoice.LPO),
		CurrencyTyCd:   currency,
		ExchangeRt:     in.ExchangeRate.Round(2).String(),
		DestnCountryCd: optional(in.Invoice.ExportCountryCode),
		ItemList:       items,
	}
	fillTaxGrids(doc, rawLines)
	return doc
}

func customerName(in DocumentInput) string {
	if in.Customer != nil {
		return in.Customer.Name
	}
	return ""
}

// BuildSales produces the saveSales payload for a customer invoice.
func BuildSales(in DocumentInput) *SalesInvoice {
	doc := buildEnvelope(in)
	doc.OrgInvcNo = 0
	doc.RcptTyCd = zra.ReceiptTypeSale
	doc.PmtTyCd = paymentType(in.Invoice)
	doc.Remark = "sales"
	return doc
}

// BuildCreditNote produces the saveSales payload for a customer credit note.
// orgReceiptNo is the fiscal receipt number of the invoice being reversed.
func BuildCreditNote(in DocumentInput, orgReceiptNo int64) *SalesInvoice {
	doc := buildEnvelope(in)
	doc.OrgSdcID = in.Company.SdcID
	doc.OrgInvcNo = orgReceiptNo
	doc.RcptTyCd = zra.ReceiptTypeRefund
	doc.PmtTyCd = zra.PaymentCash
	doc.RfdRsnCd = reasonOrDefault(in.Invoice.ReversalReason, zra.DefaultReversalReason)
	doc.Remark = "credit note"
	return doc
}

// BuildDebitNote produces the saveSales payload for a debit note against the
// original invoice's fiscal receipt.
func BuildDebitNote(in DocumentInput, orgReceiptNo int64) *SalesInvoice {
	doc := buildEnvelope(in)
	doc.OrgSdcID = in.Company.SdcID
	doc.OrgInvcNo = orgReceiptNo
	doc.RcptTyCd = zra.ReceiptTypeDebit
	doc.PmtTyCd = zra.PaymentCash
	doc.DbtRsnCd = reasonOrDefault(in.Invoice.DebitNoteReason, zra.DefaultDebitNoteReason)
	doc.Remark = "Debit note"
	return doc
}

func paymentType(inv *entity.Invoice) string {
	if inv.PaymentType != "" {
		return inv.PaymentType
	}
	return zra.PaymentCash
}

func reasonOrDefault(reason, fallback string) string {
	if reason != "" {
		return reason
	}
	return fallback
}
