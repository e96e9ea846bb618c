package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

func TestNewHistoryStore(t *testing.T) {
	store := NewHistoryStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.records)
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	now := time.Now()
	record := domain.MergeRecord{
		ID:           "run-1",
		Output:       "/out/merged.html",
		Sources:      []string{"/in/a.html", "/in/b.html"},
		BytesWritten: 64,
		StartedAt:    now,
		FinishedAt:   now.Add(time.Millisecond),
	}

	require.NoError(t, store.Save(ctx, record))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, record.Output, got.Output)
	assert.Equal(t, record.Sources, got.Sources)
	assert.Equal(t, 64, got.BytesWritten)
}

func TestHistoryStore_SaveCopiesSources(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	sources := []string{"a.html"}
	require.NoError(t, store.Save(ctx, domain.MergeRecord{ID: "r", Sources: sources}))
	sources[0] = "changed.html"

	got, err := store.Get(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, "a.html", got.Sources[0])
}

func TestHistoryStore_SaveEmptyID(t *testing.T) {
	store := NewHistoryStore()
	err := store.Save(context.Background(), domain.MergeRecord{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryStore_GetNotFound(t *testing.T) {
	store := NewHistoryStore()
	got, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestHistoryStore_List(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, store.Save(ctx, domain.MergeRecord{
			ID:        id,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	t.Run("newest first", func(t *testing.T) {
		records, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "third", records[0].ID)
		assert.Equal(t, "second", records[1].ID)
		assert.Equal(t, "first", records[2].ID)
	})

	t.Run("limit", func(t *testing.T) {
		records, err := store.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "third", records[0].ID)
	})

	t.Run("limit larger than store", func(t *testing.T) {
		records, err := store.List(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}
