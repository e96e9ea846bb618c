package driven

import (
	"context"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

// HistoryStore persists a record of completed merges.
type HistoryStore interface {
	// Save stores a merge record.
	Save(ctx context.Context, record domain.MergeRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (*domain.MergeRecord, error)

	// List returns the most recent records first.
	// A limit of zero or less returns all records.
	List(ctx context.Context, limit int) ([]domain.MergeRecord, error)
}
