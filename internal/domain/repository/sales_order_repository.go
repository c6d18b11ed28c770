package repository

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// SalesOrderRepository resolves originating sales orders by ERP name. An
// invoice's Origin field may reference several orders, comma separated;
// callers resolve each name independently.
type SalesOrderRepository interface {
	GetByName(ctx context.Context, name string) (*entity.SalesOrder, error)
}
