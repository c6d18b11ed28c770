package postgres

import (
	"context"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// Sequence names in the sequences table.
const (
	sequenceFiscal   = "fiscal_invoice"
	sequenceItemCode = "item_code"
)

// SequenceRepo hands out counters from the sequences table. The increment is
// a single atomic statement, so concurrent callers never see the same value.
type SequenceRepo struct {
	q Querier
}

func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

func (r *SequenceRepo) NextFiscal(ctx context.Context) (int64, error) {
	return r.next(ctx, sequenceFiscal)
}

func (r *SequenceRepo) NextItemCode(ctx context.Context) (int64, error) {
	return r.next(ctx, sequenceItemCode)
}

func (r *SequenceRepo) next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO sequences (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("next %s sequence: %w", name, err)
	}
	return value, nil
}
