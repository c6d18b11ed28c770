package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
)

var _ repository.CurrencyRateRepository = (*CurrencyRateRepo)(nil)

// CurrencyRateRepo implements CurrencyRateRepository over PostgreSQL.
type CurrencyRateRepo struct {
	q Querier
}

func NewCurrencyRateRepository(q Querier) *CurrencyRateRepo {
	return &CurrencyRateRepo{q: q}
}

// LatestRate returns the newest dated rate row for the currency.
func (r *CurrencyRateRepo) LatestRate(ctx context.Context, currency string) (*entity.CurrencyRate, error) {
	query := `
		SELECT currency, rate_date, inverse_company_rate
		FROM currency_rates
		WHERE currency = $1
		ORDER BY rate_date DESC
		LIMIT 1`
	var cr entity.CurrencyRate
	err := r.q.QueryRow(ctx, query, currency).Scan(&cr.Currency, &cr.Date, &cr.InverseCompanyRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("currency rate %s: %w", currency, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get currency rate: %w", err)
	}
	return &cr, nil
}
