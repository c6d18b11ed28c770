package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)
var _ repository.ScrapRepository = (*ScrapRepo)(nil)

// StockRepo implements StockRepository over PostgreSQL. Works with a pool or
// a transaction (Querier).
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// OnHand returns the current level, zero for items that never moved.
func (r *StockRepo) OnHand(ctx context.Context, itemID string) (decimal.Decimal, error) {
	var qty decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT on_hand FROM stock_levels WHERE item_id = $1`, itemID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get stock level: %w", err)
	}
	return qty, nil
}

// ApplyDelta adjusts the level atomically in one upsert, so concurrent
// movements never lose an update.
func (r *StockRepo) ApplyDelta(ctx context.Context, itemID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		INSERT INTO stock_levels (item_id, on_hand, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (item_id)
		DO UPDATE SET on_hand = stock_levels.on_hand + EXCLUDED.on_hand, updated_at = now()
		RETURNING on_hand`
	var level decimal.Decimal
	if err := r.q.QueryRow(ctx, query, itemID, delta).Scan(&level); err != nil {
		return decimal.Zero, fmt.Errorf("apply stock delta: %w", err)
	}
	return level, nil
}

// ScrapRepo implements ScrapRepository over PostgreSQL.
type ScrapRepo struct {
	q Querier
}

func NewScrapRepository(q Querier) *ScrapRepo {
	return &ScrapRepo{q: q}
}

func (r *ScrapRepo) GetByID(ctx context.Context, id string) (*entity.Scrap, error) {
	query := `SELECT id, name, item_id, quantity, scrap_date, done FROM scraps WHERE id = $1`
	var sc entity.Scrap
	err := r.q.QueryRow(ctx, query, id).Scan(&sc.ID, &sc.Name, &sc.ItemID, &sc.Quantity, &sc.ScrapDate, &sc.Done)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("scrap %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get scrap: %w", err)
	}
	return &sc, nil
}

func (r *ScrapRepo) MarkDone(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE scraps SET done = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark scrap done: %w", err)
	}
	return nil
}
