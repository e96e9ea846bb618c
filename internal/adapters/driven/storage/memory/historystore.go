package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.MergeRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make(map[string]domain.MergeRecord),
	}
}

// Save stores or replaces a merge record.
func (s *HistoryStore) Save(_ context.Context, record domain.MergeRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record.Sources = append([]string(nil), record.Sources...)
	s.records[record.ID] = record
	return nil
}

// Get retrieves a record by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.MergeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.MergeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.MergeRecord, 0, len(s.records))
	for _, r := range s.records {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartedAt.After(result[j].StartedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
