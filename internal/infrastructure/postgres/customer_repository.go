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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository over PostgreSQL.
type CustomerRepo struct {
	q Querier
}

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, tpin, vat, lpo, branch_id, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.TPIN, &c.VAT, &c.LPO, &c.BranchID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, tpin = $3, vat = $4, lpo = $5, branch_id = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.TPIN, c.VAT, c.LPO, c.BranchID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}
