package entity

import "github.com/shopspring/decimal"

// PurchaseSale is a supplier-reported sale fetched from the gateway, awaiting
// local confirmation or rejection. Field values are kept as the gateway sent
// them so the decision payload can echo them back verbatim.
type PurchaseSale struct {
	SupplierTPIN      string
	SupplierName      string
	SupplierBranchID  string
	SupplierInvoiceNo int64
	ReceiptTypeCode   string
	PaymentTypeCode   string
	ConfirmDate       string // yyyyMMddHHmmss as received
	SalesDate         string // yyyyMMdd as received
	StockReleaseDate  string
	TotalItemCount    int
	TotalTaxable      decimal.Decimal
	TotalTax          decimal.Decimal
	TotalAmount       decimal.Decimal
	Remark            string
	Items             []PurchaseItem
}

// PurchaseItem is one line of a supplier-reported sale.
type PurchaseItem struct {
	Sequence           int
	ItemCode           string
	ClassificationCode string
	Name               string
	Barcode            string
	PackagingUnitCode  string
	Packaging          decimal.Decimal
	QuantityUnitCode   string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	SupplyAmount       decimal.Decimal
	DiscountRate       decimal.Decimal
	DiscountAmount     decimal.Decimal
	VATCategoryCode    string
	TaxableAmount      decimal.Decimal
	TaxAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
}

// ImportItem is one line of a customs import declaration fetched from the
// gateway, awaiting approval or rejection with a mapped local item.
type ImportItem struct {
	TaskCode            string
	DeclarationNo       string
	ItemSequence        int
	DeclarationDate     string // yyyyMMdd as received
	HSCode              string
	ItemName            string
	OriginCountryCode   string
	ExportCountryCode   string
	PackagingUnitCode   string
	Packaging           decimal.Decimal
	QuantityUnitCode    string
	Quantity            decimal.Decimal
	GrossWeight         decimal.Decimal
	NetWeight           decimal.Decimal
	SupplierName        string
	AgentName           string
	InvoiceForeignAmt   decimal.Decimal
	InvoiceForeignCurr  string
	InvoiceExchangeRate decimal.Decimal
}
