package gateway

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// Fallback codes applied when a supplier sale line arrives without the
// corresponding classification data.
const (
	fallbackClassificationCode = "5059690800"
	fallbackPackagingUnit      = "NT"
	fallbackQuantityUnit       = "U"
)

// BuildPurchaseConfirmation produces the savePurchase payload recording the
// local decision on a supplier-reported sale. statusCd is the pchsSttsCd:
// confirmed or rejected.
func BuildPurchaseConfirmation(sale *entity.PurchaseSale, statusCd string, company entity.Company, user entity.User) *PurchaseConfirmation {
	items := make([]PurchaseLineItem, 0, len(sale.Items))
	for _, it := range sale.Items {
		clsCd := it.ClassificationCode
		if clsCd == "" {
			clsCd = fallbackClassificationCode
		}
		pkgUnit := it.PackagingUnitCode
		if pkgUnit == "" {
			pkgUnit = fallbackPackagingUnit
		}
		qtyUnit := it.QuantityUnitCode
		if qtyUnit == "" {
			qtyUnit = fallbackQuantityUnit
		}
		vatCat := it.VATCategoryCode
		if vatCat == "" {
			vatCat = "A"
		}

		items = append(items, PurchaseLineItem{
			ItemSeq:   it.Sequence,
			ItemCd:    it.ItemCode,
			ItemClsCd: clsCd,
			PkgUnitCd: pkgUnit,
			ItemNm:    it.Name,
			Bcd:       it.Barcode,
			Pkg:       it.Packaging,
			QtyUnitCd: qtyUnit,
			Qty:       it.Quantity,
			Prc:       it.UnitPrice,
			SplyAmt:   it.SupplyAmount,
			DcRt:      it.DiscountRate,
			DcAmt:     it.DiscountAmount,
			VatCatCd:  vatCat,
			TaxAmt:    it.TaxAmount,
			TaxblAmt:  it.TaxableAmount,
			TotAmt:    it.TotalAmount,
		})
	}

	return &PurchaseConfirmation{
		Tpin:        company.TPIN,
		BhfID:       company.BranchID,
		InvcNo:      sale.SupplierInvoiceNo,
		OrgInvcNo:   0,
		SpplrTpin:   sale.SupplierTPIN,
		SpplrBhfID:  sale.SupplierBranchID,
		SpplrNm:     sale.SupplierName,
		SpplrInvcNo: sale.SupplierInvoiceNo,
		RegTyCd:     "A",
		PchsTyCd:    zra.SaleTypeNormal,
		RcptTyCd:    zra.ReceiptTypePurchase,
		PmtTyCd:     sale.PaymentTypeCode,
		PchsSttsCd:  statusCd,
		CfmDt:       sale.ConfirmDate,
		PchsDt:      sale.SalesDate,
		TotItemCnt:  sale.TotalItemCount,
		TotTaxblAmt: sale.TotalTaxable,
		TotTaxAmt:   sale.TotalTax,
		TotAmt:      sale.TotalAmount,
		Remark:      sale.Remark,
		RegrID:      user.ID,
		RegrNm:      user.Name,
		ModrNm:      user.Name,
		ModrID:      user.ID,
		ItemList:    items,
	}
}

// PurchaseStockLine pairs a fetched purchase line with the matching local
// item record. Lines without a local item never reach the stock report.
type PurchaseStockLine struct {
	Entry entity.PurchaseItem
	Item  *entity.Item
}

// BuildPurchaseStockItems produces the stock-in movement for an accepted
// supplier sale. Identifying codes come from the local item master; amounts
// echo what the supplier reported.
func BuildPurchaseStockItems(sale *entity.PurchaseSale, lines []PurchaseStockLine, company entity.Company, user entity.User, now time.Time) *StockItems {
	items := make([]LineItem, 0, len(lines))
	var taxable, tax, total decimal.Decimal
	for i, l := range lines {
		items = append(items, LineItem{
			ItemSeq:   i + 1,
			ItemCd:    l.Item.ItemCode,
			ItemClsCd: l.Item.ClassificationCode,
			ItemNm:    l.Item.Name,
			Bcd:       l.Item.Barcode,
			PkgUnitCd: l.Item.PackagingUnitCode,
			Pkg:       l.Entry.Quantity,
			QtyUnitCd: l.Item.QuantityUnitCode,
			Qty:       l.Entry.Quantity,
			Prc:       l.Entry.UnitPrice,
			SplyAmt:   l.Entry.SupplyAmount,
			DcRt:      l.Entry.DiscountRate,
			DcAmt:     l.Entry.DiscountAmount,
			VatCatCd:  l.Entry.VATCategoryCode,
			TaxblAmt:  l.Entry.TaxableAmount,
			VatAmt:    l.Entry.TaxAmount,
			TaxAmt:    l.Entry.TaxAmount,
			TotAmt:    l.Entry.TotalAmount,
		})
		taxable = taxable.Add(l.Entry.TaxableAmount)
		tax = tax.Add(l.Entry.TaxAmount)
		total = total.Add(l.Entry.TotalAmount)
	}

	return &StockItems{
		Tpin:        company.TPIN,
		BhfID:       company.BranchID,
		SarNo:       StockSarNo(now),
		OrgSarNo:    0,
		RegTyCd:     zra.RegistrationTypeManual,
		CustTpin:    &sale.SupplierTPIN,
		CustNm:      &sale.SupplierName,
		CustBhfID:   zra.DefaultBranchID,
		SarTyCd:     zra.StockInPurchase,
		OcrnDt:      sale.SalesDate,
		TotItemCnt:  len(lines),
		TotTaxblAmt: taxable,
		TotTaxAmt:   tax,
		TotAmt:      total,
		Remark:      "Purchase",
		RegrID:      user.ID,
		RegrNm:      user.Name,
		ModrNm:      user.Name,
		ModrID:      user.ID,
		ItemList:    items,
	}
}

// ImportStockLine pairs an approved declaration line with the local item it
// was mapped to.
type ImportStockLine struct {
	Entry entity.ImportItem
	Item  *entity.Item
}

// importVATRate applies to the invoice value of cleared imports.
var importVATRate = decimal.NewFromFloat(0.16)

// BuildImportStockItems produces the stock-in movement for approved customs
// declaration lines. Identifying codes come from the mapped local items; the
// value is the supplier's foreign-currency invoice amount as declared.
func BuildImportStockItems(lines []ImportStockLine, company entity.Company, user entity.User, now time.Time) *StockItems {
	items := make([]LineItem, 0, len(lines))
	var taxable, tax, total decimal.Decimal
	for i, l := range lines {
		supply := l.Entry.Quantity.Mul(l.Entry.InvoiceForeignAmt).Round(4)
		vat := supply.Mul(importVATRate).Round(4)
		items = append(items, LineItem{
			ItemSeq:   i + 1,
			ItemCd:    l.Item.ItemCode,
			ItemClsCd: l.Item.ClassificationCode,
			ItemNm:    l.Entry.ItemName,
			Bcd:       l.Item.Barcode,
			PkgUnitCd: l.Entry.PackagingUnitCode,
			Pkg:       l.Entry.Packaging,
			QtyUnitCd: l.Entry.QuantityUnitCode,
			Qty:       l.Entry.Quantity,
			Prc:       l.Entry.InvoiceForeignAmt,
			SplyAmt:   supply,
			TaxblAmt:  supply,
			VatCatCd:  "D",
			VatAmt:    vat,
			TaxAmt:    vat,
			TotAmt:    supply,
		})
		taxable = taxable.Add(supply)
		tax = tax.Add(vat)
		total = total.Add(supply)
	}

	return &StockItems{
		Tpin:        company.TPIN,
		BhfID:       company.BranchID,
		SarNo:       StockSarNo(now),
		OrgSarNo:    0,
		RegTyCd:     zra.RegistrationTypeManual,
		CustBhfID:   zra.DefaultBranchID,
		SarTyCd:     zra.StockInImport,
		OcrnDt:      lines[0].Entry.DeclarationDate,
		TotItemCnt:  len(lines),
		TotTaxblAmt: taxable,
		TotTaxAmt:   tax,
		TotAmt:      total,
		Remark:      "Import",
		RegrID:      user.ID,
		RegrNm:      user.Name,
		ModrNm:      user.Name,
		ModrID:      user.ID,
		ItemList:    items,
	}
}

// BuildImportUpdate produces the updateImportItems payload carrying one
// decision (approve or reject) for every line of a declaration.
func BuildImportUpdate(decl []entity.ImportItem, itemCodes map[int]string, classCodes map[int]string, statusCd, remark string, company entity.Company, user entity.User) *ImportUpdate {
	if len(decl) == 0 {
		return nil
	}

	items := make([]ImportItemUpdate, 0, len(decl))
	for _, d := range decl {
		items = append(items, ImportItemUpdate{
			ItemSeq:        d.ItemSequence,
			HsCd:           d.HSCode,
			ItemClsCd:      classCodes[d.ItemSequence],
			ItemCd:         itemCodes[d.ItemSequence],
			ImptItemSttsCd: statusCd,
			Remark:         remark,
			ModrNm:         user.Name,
			ModrID:         user.ID,
		})
	}

	return &ImportUpdate{
		Tpin:           company.TPIN,
		BhfID:          company.BranchID,
		TaskCd:         decl[0].TaskCode,
		DclDe:          decl[0].DeclarationDate,
		ImportItemList: items,
	}
}
