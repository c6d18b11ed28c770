package repository

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// ItemRepository is the persistence port for the item master.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByCode(ctx context.Context, itemCode string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// CodeExists reports whether another item already holds the code,
	// excluding the given item id (empty id checks all items).
	CodeExists(ctx context.Context, itemCode, excludeItemID string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Item, error)
	// GetComposition returns the bill of materials declared for the item.
	GetComposition(ctx context.Context, itemID string) ([]entity.BOMLine, error)
}
