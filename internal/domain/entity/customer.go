package entity

import "time"

// Customer is the ERP partner record. TPIN mirrors the VAT field in the host
// ERP; both are kept in sync by the contacts layer.
type Customer struct {
	ID       string
	Name     string
	TPIN     string
	VAT      string
	LPO      string
	BranchID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveTPIN returns the customer's taxpayer ID, preferring TPIN over the
// legacy VAT field.
func (c *Customer) EffectiveTPIN() string {
	if c.TPIN != "" {
		return c.TPIN
	}
	return c.VAT
}
