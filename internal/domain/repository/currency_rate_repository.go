package repository

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// CurrencyRateRepository is the read port for ERP exchange rates.
type CurrencyRateRepository interface {
	// LatestRate returns the most recently dated rate row for the currency,
	// or domain.ErrNotFound when no rate is configured.
	LatestRate(ctx context.Context, currency string) (*entity.CurrencyRate, error)
}
