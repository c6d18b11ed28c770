package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// StockRepository is the persistence port for on-hand stock at the reporting
// branch.
type StockRepository interface {
	// OnHand returns the current quantity for the item, zero if the item has
	// never moved.
	OnHand(ctx context.Context, itemID string) (decimal.Decimal, error)
	// ApplyDelta adjusts on-hand stock by the signed quantity (negative for
	// outgoing movements) and returns the resulting level.
	ApplyDelta(ctx context.Context, itemID string, delta decimal.Decimal) (decimal.Decimal, error)
}

// ScrapRepository is the persistence port for inventory write-off orders.
type ScrapRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Scrap, error)
	MarkDone(ctx context.Context, id string) error
}
