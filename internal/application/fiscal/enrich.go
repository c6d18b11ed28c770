package fiscal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// enrichFromSalesOrder copies TPIN, LPO and export country from the
// originating sales order onto the invoice. The Origin field is free text
// and may reference several orders separated by commas; the first resolvable
// one wins. A missing order is not an error.
func (s *Service) enrichFromSalesOrder(ctx context.Context, inv *entity.Invoice) {
	if inv.Origin == "" {
		return
	}

	for _, name := range strings.Split(inv.Origin, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		order, err := s.orders.GetByName(ctx, name)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.log.Warn().Err(err).Str("order", name).Msg("sales order lookup failed")
			}
			continue
		}

		if inv.TPIN == "" {
			inv.TPIN = order.TPIN
		}
		inv.LPO = order.LPO
		inv.ExportCountryCode = order.ExportCountryCode
		inv.ExportCountryName = order.ExportCountryName
		return
	}
}

// exchangeRate resolves the latest configured rate between two currencies.
// Same currency is identity; otherwise the newest dated rate row of each leg
// is composed. A missing rate row is a hard error: the envelope cannot carry
// an honest exchangeRt without it.
func (s *Service) exchangeRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == "" || from == to {
		return decimal.NewFromInt(1), nil
	}

	fromRate, err := s.rates.LatestRate(ctx, from)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s to %s", domain.ErrMissingExchangeRate, from, to)
		}
		return decimal.Zero, err
	}

	if to == s.company.Currency {
		return fromRate.InverseCompanyRate, nil
	}

	toRate, err := s.rates.LatestRate(ctx, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrMissingExchangeRate, to)
		}
		return decimal.Zero, err
	}

	return fromRate.InverseCompanyRate.Div(toRate.InverseCompanyRate), nil
}
