package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save stores or replaces a merge record.
func (h *historyStore) Save(ctx context.Context, record domain.MergeRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}

	sourcesJSON, err := json.Marshal(record.Sources)
	if err != nil {
		return fmt.Errorf("marshalling sources: %w", err)
	}

	_, err = h.store.db.ExecContext(ctx, `
		INSERT INTO merge_history (id, output, sources, source_count, bytes_written,
			cleaned, deleted_count, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			output = excluded.output,
			sources = excluded.sources,
			source_count = excluded.source_count,
			bytes_written = excluded.bytes_written,
			cleaned = excluded.cleaned,
			deleted_count = excluded.deleted_count,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at
	`, record.ID, record.Output, string(sourcesJSON), len(record.Sources), record.BytesWritten,
		boolToInt(record.Cleaned), record.DeletedCount,
		record.StartedAt.UnixNano(), record.FinishedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving merge record: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (h *historyStore) Get(ctx context.Context, id string) (*domain.MergeRecord, error) {
	row := h.store.db.QueryRowContext(ctx, `
		SELECT id, output, sources, bytes_written, cleaned, deleted_count, started_at, finished_at
		FROM merge_history WHERE id = ?
	`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List returns records newest first.
func (h *historyStore) List(ctx context.Context, limit int) ([]domain.MergeRecord, error) {
	query := `
		SELECT id, output, sources, bytes_written, cleaned, deleted_count, started_at, finished_at
		FROM merge_history ORDER BY started_at DESC, id ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing merge history: %w", err)
	}
	defer rows.Close()

	var records []domain.MergeRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating merge history: %w", err)
	}
	return records, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.MergeRecord, error) {
	var (
		record      domain.MergeRecord
		sourcesJSON string
		cleaned     int
		startedAt   int64
		finishedAt  int64
	)

	err := row.Scan(&record.ID, &record.Output, &sourcesJSON, &record.BytesWritten,
		&cleaned, &record.DeletedCount, &startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning merge record: %w", err)
	}

	if err := json.Unmarshal([]byte(sourcesJSON), &record.Sources); err != nil {
		return nil, fmt.Errorf("unmarshalling sources: %w", err)
	}
	record.Cleaned = cleaned != 0
	record.StartedAt = time.Unix(0, startedAt)
	record.FinishedAt = time.Unix(0, finishedAt)
	return &record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
