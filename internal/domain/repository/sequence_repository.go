package repository

import "context"

// SequenceRepository hands out monotonic counters. Implementations must be
// safe under concurrent callers; two invocations never return the same value.
type SequenceRepository interface {
	// NextFiscal returns the next per-day fiscal invoice sequence.
	NextFiscal(ctx context.Context) (int64, error)
	// NextItemCode returns the next item code suffix.
	NextItemCode(ctx context.Context) (int64, error)
}
