package driving

import (
	"context"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

// HistoryService exposes past merges.
type HistoryService interface {
	// List returns the most recent merges first.
	List(ctx context.Context, limit int) ([]domain.MergeRecord, error)

	// Get retrieves a single merge by ID.
	Get(ctx context.Context, id string) (*domain.MergeRecord, error)
}
