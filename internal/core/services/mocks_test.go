package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

// failingWriter always fails to write.
type failingWriter struct {
	err error
}

func (w *failingWriter) Write(_ context.Context, _ string, _ []byte) error {
	return w.err
}

// mockHistoryStore records saved merges.
type mockHistoryStore struct {
	mu      sync.Mutex
	records []domain.MergeRecord
	saveErr error
	listErr error
}

func (m *mockHistoryStore) Save(_ context.Context, record domain.MergeRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *mockHistoryStore) Get(_ context.Context, id string) (*domain.MergeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == id {
			r := m.records[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryStore) List(_ context.Context, limit int) ([]domain.MergeRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]domain.MergeRecord(nil), m.records...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var errDiskFull = errors.New("disk full")

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func ptr[T any](v T) *T {
	return &v
}
