package repository

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// CustomerRepository is the persistence port for ERP partners.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// Update keeps TPIN and VAT in sync when either field changes.
	Update(ctx context.Context, customer *entity.Customer) error
}
