package repository

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// CatalogRepository is the persistence port for the authority's reference
// catalogues. The gateway is the source of truth; a sync replaces the stored
// copy wholesale.
type CatalogRepository interface {
	ReplaceClassifications(ctx context.Context, list []entity.ItemClassification) error
	ReplaceCommonCodes(ctx context.Context, list []entity.CommonCode) error
	ListClassifications(ctx context.Context) ([]entity.ItemClassification, error)
	// ListCommonCodes returns stored codes, restricted to one class when
	// classCode is non-empty.
	ListCommonCodes(ctx context.Context, classCode string) ([]entity.CommonCode, error)
}
