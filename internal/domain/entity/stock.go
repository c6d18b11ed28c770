package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel is the current on-hand quantity of an item at the reporting
// branch. Quantities are decimals because the ERP allows fractional UoMs.
type StockLevel struct {
	ItemID    string
	OnHand    decimal.Decimal
	UpdatedAt time.Time
}

// StockMove is one physical movement reported to the stock-IO endpoint.
// Quantity is always positive; direction comes from the sarTyCd on the
// payload that carries it.
type StockMove struct {
	ItemID   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Reason   string
}

// Scrap is an inventory write-off order. Confirming it reports the scrapped
// quantity to the gateway and decrements on-hand stock.
type Scrap struct {
	ID        string
	Name      string
	ItemID    string
	Quantity  decimal.Decimal
	ScrapDate time.Time
	Done      bool
}
