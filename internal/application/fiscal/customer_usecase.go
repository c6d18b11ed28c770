package fiscal

import (
	"context"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// SetCustomerTPIN validates and stores a customer's taxpayer identification
// number. An empty TPIN clears the field; documents for the customer then fall
// back to the walk-in default.
func (s *Service) SetCustomerTPIN(ctx context.Context, customerID, tpin string) error {
	if tpin != "" && !zra.IsValidTPIN(tpin) {
		return fmt.Errorf("%w: %q must be %d digits", domain.ErrInvalidTPIN, tpin, zra.TPINLength)
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return err
	}

	customer.TPIN = tpin
	customer.VAT = tpin
	return s.customers.Update(ctx, customer)
}
