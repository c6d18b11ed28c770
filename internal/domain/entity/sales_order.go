package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder carries the export/LPO data captured at order time. Invoices
// reference it through their free-text Origin field; the lookup is a
// best-effort enrichment, not a hard foreign key.
type SalesOrder struct {
	ID                string
	Name              string
	CustomerID        string
	TPIN              string
	LPO               string
	ExportCountryCode string
	ExportCountryName string
}

// CurrencyRate is one dated exchange-rate row. InverseCompanyRate is the
// value of one unit of Currency in company currency, as the ERP stores it.
type CurrencyRate struct {
	Currency           string
	Date               time.Time
	InverseCompanyRate decimal.Decimal
}
