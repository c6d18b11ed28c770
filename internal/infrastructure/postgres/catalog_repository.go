package postgres

import (
	"context"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implements CatalogRepository over PostgreSQL.
type CatalogRepo struct {
	q Querier
}

func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ReplaceClassifications clears the stored catalogue and loads the new one.
// The upsert absorbs duplicate codes within a single gateway payload.
func (r *CatalogRepo) ReplaceClassifications(ctx context.Context, list []entity.ItemClassification) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM item_classifications`); err != nil {
		return fmt.Errorf("clear classifications: %w", err)
	}

	query := `
		INSERT INTO item_classifications (code, name, level, tax_type_code, major_target)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code)
		DO UPDATE SET name = EXCLUDED.name, level = EXCLUDED.level,
			tax_type_code = EXCLUDED.tax_type_code, major_target = EXCLUDED.major_target`
	for _, c := range list {
		if _, err := r.q.Exec(ctx, query, c.Code, c.Name, c.Level, c.TaxTypeCode, c.MajorTarget); err != nil {
			return fmt.Errorf("store classification %s: %w", c.Code, err)
		}
	}
	return nil
}

// ReplaceCommonCodes clears and reloads the shared code catalogue.
func (r *CatalogRepo) ReplaceCommonCodes(ctx context.Context, list []entity.CommonCode) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM common_codes`); err != nil {
		return fmt.Errorf("clear common codes: %w", err)
	}

	query := `
		INSERT INTO common_codes (class_code, class_name, code, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (class_code, code)
		DO UPDATE SET class_name = EXCLUDED.class_name, name = EXCLUDED.name`
	for _, c := range list {
		if _, err := r.q.Exec(ctx, query, c.ClassCode, c.ClassName, c.Code, c.Name); err != nil {
			return fmt.Errorf("store common code %s/%s: %w", c.ClassCode, c.Code, err)
		}
	}
	return nil
}

func (r *CatalogRepo) ListClassifications(ctx context.Context) ([]entity.ItemClassification, error) {
	query := `
		SELECT code, name, level, tax_type_code, major_target
		FROM item_classifications
		ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()

	var out []entity.ItemClassification
	for rows.Next() {
		var c entity.ItemClassification
		if err := rows.Scan(&c.Code, &c.Name, &c.Level, &c.TaxTypeCode, &c.MajorTarget); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListCommonCodes(ctx context.Context, classCode string) ([]entity.CommonCode, error) {
	query := `
		SELECT class_code, class_name, code, name
		FROM common_codes
		WHERE $1 = '' OR class_code = $1
		ORDER BY class_code, code`
	rows, err := r.q.Query(ctx, query, classCode)
	if err != nil {
		return nil, fmt.Errorf("list common codes: %w", err)
	}
	defer rows.Close()

	var out []entity.CommonCode
	for rows.Next() {
		var c entity.CommonCode
		if err := rows.Scan(&c.ClassCode, &c.ClassName, &c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan common code: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
