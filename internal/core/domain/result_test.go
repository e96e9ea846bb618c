package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeResult_Duration(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	r := &MergeResult{StartedAt: start, FinishedAt: start.Add(150 * time.Millisecond)}
	assert.Equal(t, 150*time.Millisecond, r.Duration())
}

func TestNewMergeRecord(t *testing.T) {
	start := time.Now()
	r := &MergeResult{
		ID:           "run-1",
		Output:       "/tmp/merged.html",
		Sources:      []string{"/tmp/a.html", "/tmp/b.html"},
		BytesWritten: 42,
		Cleaned:      true,
		Deleted:      []string{"/tmp/a.html"},
		Skipped:      []string{"/tmp/b.html"},
		StartedAt:    start,
		FinishedAt:   start.Add(time.Second),
	}

	rec := NewMergeRecord(r)

	assert.Equal(t, "run-1", rec.ID)
	assert.Equal(t, "/tmp/merged.html", rec.Output)
	assert.Equal(t, 2, rec.SourceCount())
	assert.Equal(t, 42, rec.BytesWritten)
	assert.True(t, rec.Cleaned)
	assert.Equal(t, 1, rec.DeletedCount)
	assert.Equal(t, start, rec.StartedAt)

	r.Sources[0] = "mutated"
	assert.Equal(t, "/tmp/a.html", rec.Sources[0])
}
