package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository over PostgreSQL. Works with a pool or a
// transaction (Querier).
type ItemRepo struct {
	q Querier
}

func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `
	id, name, item_code, classification_code, classification_level,
	tax_type_code, item_type, packaging_unit_code, quantity_unit_code,
	origin_country_code, barcode, list_price, tax_category, use_yn,
	created_at, updated_at`

func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.ItemCode, item.ClassificationCode, item.ClassificationLevel,
		item.TaxTypeCode, item.ItemType, item.PackagingUnitCode, item.QuantityUnitCode,
		item.OriginCountryCode, item.Barcode, item.ListPrice, item.TaxCategory, item.UseYn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateItemCode, item.ItemCode)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	return r.getOne(ctx, "item_code = $1", code)
}

func (r *ItemRepo) getOne(ctx context.Context, where string, arg any) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + where

	var it entity.Item
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&it.ID, &it.Name, &it.ItemCode, &it.ClassificationCode, &it.ClassificationLevel,
		&it.TaxTypeCode, &it.ItemType, &it.PackagingUnitCode, &it.QuantityUnitCode,
		&it.OriginCountryCode, &it.Barcode, &it.ListPrice, &it.TaxCategory, &it.UseYn,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %v: %w", arg, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name                 = $2,
		    item_code            = $3,
		    classification_code  = $4,
		    classification_level = $5,
		    tax_type_code        = $6,
		    item_type            = $7,
		    packaging_unit_code  = $8,
		    quantity_unit_code   = $9,
		    origin_country_code  = $10,
		    barcode              = $11,
		    list_price           = $12,
		    tax_category         = $13,
		    use_yn               = $14,
		    updated_at           = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.ItemCode, item.ClassificationCode, item.ClassificationLevel,
		item.TaxTypeCode, item.ItemType, item.PackagingUnitCode, item.QuantityUnitCode,
		item.OriginCountryCode, item.Barcode, item.ListPrice, item.TaxCategory, item.UseYn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateItemCode, item.ItemCode)
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (r *ItemRepo) CodeExists(ctx context.Context, itemCode, excludeItemID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE item_code = $1 AND id <> $2)`,
		itemCode, excludeItemID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item code: %w", err)
	}
	return exists, nil
}

func (r *ItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.ItemCode, &it.ClassificationCode, &it.ClassificationLevel,
			&it.TaxTypeCode, &it.ItemType, &it.PackagingUnitCode, &it.QuantityUnitCode,
			&it.OriginCountryCode, &it.Barcode, &it.ListPrice, &it.TaxCategory, &it.UseYn,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *ItemRepo) GetComposition(ctx context.Context, itemID string) ([]entity.BOMLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT component_item_id, quantity FROM item_bom WHERE parent_item_id = $1 ORDER BY component_item_id`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("list item composition: %w", err)
	}
	defer rows.Close()

	var bom []entity.BOMLine
	for rows.Next() {
		var l entity.BOMLine
		if err := rows.Scan(&l.ComponentItemID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan composition line: %w", err)
		}
		bom = append(bom, l)
	}
	return bom, rows.Err()
}
