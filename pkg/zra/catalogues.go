// Package zra contains catalogues and wire constants aligned to the ZRA
// Smart Invoice (VSDC) integration specification for Zambia.
package zra

import "time"

// =============================================================================
// Result codes — every Smart Invoice endpoint answers with a resultCd; "000"
// is the only success sentinel, anything else is a business-level rejection.
// =============================================================================

const (
	// ResultCodeSuccess is the gateway's success sentinel.
	ResultCodeSuccess = "000"
)

// =============================================================================
// Sales transaction codes (saveSales envelope)
// =============================================================================

const (
	SaleTypeNormal = "N" // salesTyCd: normal sale

	ReceiptTypeSale     = "S" // rcptTyCd for a standard sale
	ReceiptTypeRefund   = "R" // rcptTyCd for a credit note (refund)
	ReceiptTypeDebit    = "D" // rcptTyCd for a debit note
	ReceiptTypePurchase = "P" // rcptTyCd on purchase envelopes

	SalesStatusConfirmed = "02" // salesSttsCd: confirmed/approved
	SalesStatusRejected  = "04" // pchsSttsCd: rejected (purchase side)

	SaleCountryCode = "1" // saleCtyCd: fixed domestic marker
)

// =============================================================================
// Payment type codes (pmtTyCd)
// =============================================================================

const (
	PaymentCash         = "01"
	PaymentCredit       = "02"
	PaymentCashCredit   = "03"
	PaymentBankCheck    = "04"
	PaymentCard         = "05"
	PaymentMobileMoney  = "06"
	PaymentBankTransfer = "07"
	PaymentOther        = "08"
)

// PaymentTypeNames maps pmtTyCd to its display label.
var PaymentTypeNames = map[string]string{
	PaymentCash:         "CASH",
	PaymentCredit:       "CREDIT",
	PaymentCashCredit:   "CASH/CREDIT",
	PaymentBankCheck:    "BANK CHECK",
	PaymentCard:         "DEBIT&CREDIT CARD",
	PaymentMobileMoney:  "MOBILE MONEY",
	PaymentBankTransfer: "BANK TRANSFER",
	PaymentOther:        "OTHER",
}

// =============================================================================
// Credit note reversal reasons (rfdRsnCd) — fixed 13-value enum.
// =============================================================================

var ReversalReasons = map[string]string{
	"01": "Missing Quantity",
	"02": "Missing Item",
	"03": "Damaged",
	"04": "Wasted",
	"05": "Raw Material Shortage",
	"06": "Refund",
	"07": "Wrong Customer TPIN",
	"08": "Wrong Customer name",
	"09": "Wrong Amount/price",
	"10": "Wrong Quantity",
	"11": "Wrong Item(s)",
	"12": "Wrong tax type",
	"13": "Other reason",
}

// DefaultReversalReason is applied when a credit note carries no explicit reason.
const DefaultReversalReason = "01"

// =============================================================================
// Debit note reasons (dbtRsnCd) — fixed 4-value enum.
// =============================================================================

var DebitNoteReasons = map[string]string{
	"01": "Wrong quantity invoiced",
	"02": "Wrong invoice amount",
	"03": "Omitted item",
	"04": "Other [specify]",
}

// DefaultDebitNoteReason is applied when a debit note carries no explicit reason.
const DefaultDebitNoteReason = "02"

// =============================================================================
// Stock adjustment release type codes (sarTyCd on the stock I/O envelope)
// =============================================================================

const (
	StockInImport     = "01" // incoming: customs import release
	StockInPurchase   = "02" // incoming: purchase
	StockInCreditNote = "03" // incoming: customer return / credit note
	StockOutNormal    = "11" // outgoing: normal sale
	StockOutDebitNote = "12" // outgoing: return to supplier / debit note
	StockScrap        = "15" // outgoing: discarding / write-off
)

// =============================================================================
// Import item status codes (imptItemSttsCd on updateImportItems)
// =============================================================================

const (
	ImportStatusApproved = "3"
	ImportStatusRejected = "4"
)

// =============================================================================
// Misc fixed envelope values
// =============================================================================

const (
	// DefaultCustomerTPIN is the fallback TPIN reported for walk-in customers
	// without a taxpayer registration.
	DefaultCustomerTPIN = "1000000000"

	// DefaultBranchID is the head-office branch code.
	DefaultBranchID = "000"

	// RegistrationTypeManual is the regTyCd reported for manually captured
	// stock movements.
	RegistrationTypeManual = "M"

	// PurchaseAcceptanceNo is the fixed prchrAcptcYn value on sales envelopes.
	PurchaseAcceptanceNo = "N"

	// TPINLength is the exact digit count of a valid taxpayer ID.
	TPINLength = 10
)

// =============================================================================
// Common-code classes (code/selectCodes) used by the catalogue sync.
// =============================================================================

const (
	CodeClassQuantityUnits  = "10"
	CodeClassCountries      = "05"
	CodeClassPackagingUnits = "17"
)

// =============================================================================
// Gateway date formats. The wire uses compact local timestamps without zone
// markers; Lusaka time is implied by the authority.
// =============================================================================

const (
	dateFormat     = "20060102"
	dateTimeFormat = "20060102150405"
)

// FormatDate renders t as the gateway's yyyyMMdd date.
func FormatDate(t time.Time) string { return t.Format(dateFormat) }

// FormatDateTime renders t as the gateway's yyyyMMddHHmmss timestamp.
func FormatDateTime(t time.Time) string { return t.Format(dateTimeFormat) }

// ParseDateTime parses a gateway yyyyMMddHHmmss timestamp (e.g. the
// vsdcRcptPbctDate reconciliation field).
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(dateTimeFormat, s)
}

// IsValidTPIN reports whether s is exactly ten digits.
func IsValidTPIN(s string) bool {
	if len(s) != TPINLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
