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

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implements SalesOrderRepository over PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

func (r *SalesOrderRepo) GetByName(ctx context.Context, name string) (*entity.SalesOrder, error) {
	query := `
		SELECT id, name, customer_id, tpin, lpo, export_country_code, export_country_name
		FROM sales_orders WHERE name = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(ctx, query, name).Scan(
		&o.ID, &o.Name, &o.CustomerID, &o.TPIN, &o.LPO, &o.ExportCountryCode, &o.ExportCountryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sales order %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &o, nil
}
