package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Move types, mirroring the host ERP's document kinds that trigger
// fiscalization.
const (
	MoveOutInvoice = "out_invoice" // standard customer invoice
	MoveOutRefund  = "out_refund"  // customer credit note
	MoveInRefund   = "in_refund"   // vendor credit/debit note
)

// ERP document states. Fiscalized is not a stored state: it is inferred from
// the presence of a receipt number.
const (
	StateDraft  = "draft"
	StatePosted = "posted"
)

// Invoice is the source business document. The ERP owns its lifecycle; this
// service reads its lines and writes the fiscalization result fields after a
// successful gateway submission.
type Invoice struct {
	ID         string
	Name       string // human-readable ERP number, e.g. INV/2025/00042
	MoveType   string // MoveOutInvoice | MoveOutRefund | MoveInRefund
	State      string
	CustomerID string
	Ref        string // reference to the original document (debit notes)
	Origin     string // originating sales order name, free text

	InvoiceDate time.Time
	Currency    string

	// Enrichment from the originating sales order (best effort).
	TPIN              string
	LPO               string
	ExportCountryCode string
	ExportCountryName string
	ExchangeRate      decimal.Decimal

	PaymentType     string // pmtTyCd, defaults to "01" CASH
	ReversalReason  string // credit note rfdRsnCd (13-value enum)
	DebitNoteReason string // debit note dbtRsnCd (4-value enum)

	// FiscalNumber is the gateway-facing cisInvcNo. Persisted after the
	// first derivation so a resubmission presents the same identifier.
	FiscalNumber string

	// Fiscalization result fields, owned exclusively by the reconciler.
	// Nullable: nil means the document was never (successfully) fiscalized.
	ReceiptNo        *int64
	InternalData     *string
	ReceiptSignature *string
	PublishDate      *string // vsdcRcptPbctDate, gateway yyyyMMddHHmmss
	SdcID            *string
	MrcNo            *string
	QRCodeURL        *string
	QRCodeImage      *string // base64 PNG, regenerated from QRCodeURL

	IsPrinted bool

	Lines []InvoiceLine

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fiscalized reports whether the document already holds a gateway receipt.
func (i *Invoice) Fiscalized() bool {
	return i.ReceiptNo != nil
}

// Tax is a line's tax assignment: a jurisdiction category code and the rate
// actually configured on the ERP tax record (percent, e.g. 16).
type Tax struct {
	Category string
	Rate     decimal.Decimal
}

// InvoiceLine is one document line. Tax is nil when the ERP line has no tax
// assigned, which must fail confirmation fast.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	ItemID      string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // percent, e.g. 10 for 10%
	Tax         *Tax
}
