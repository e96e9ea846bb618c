package domain

import "time"

// CleanFailure records a source that could not be deleted after a merge.
type CleanFailure struct {
	Path string
	Err  error
}

// MergeResult describes a completed merge.
type MergeResult struct {
	// ID uniquely identifies the merge run.
	ID string

	// Output is the path that was written.
	Output string

	// Sources are the merged files in order.
	Sources []string

	// Kind records whether sources came from a file list or a directory.
	Kind SourceKind

	// Directory is the input directory in directory mode.
	Directory string

	// BytesWritten is the size of the output file.
	BytesWritten int

	// Cleaned reports whether deletion of sources was requested.
	Cleaned bool

	// Deleted lists sources removed after the merge.
	Deleted []string

	// Skipped lists sources kept because they are the output file.
	Skipped []string

	// CleanFailures lists sources that could not be removed.
	CleanFailures []CleanFailure

	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the merge took.
func (r *MergeResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// MergeRecord is a persisted history entry for one merge.
type MergeRecord struct {
	ID           string
	Output       string
	Sources      []string
	BytesWritten int
	Cleaned      bool
	DeletedCount int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// NewMergeRecord builds a history entry from a result.
func NewMergeRecord(r *MergeResult) MergeRecord {
	sources := make([]string, len(r.Sources))
	copy(sources, r.Sources)
	return MergeRecord{
		ID:           r.ID,
		Output:       r.Output,
		Sources:      sources,
		BytesWritten: r.BytesWritten,
		Cleaned:      r.Cleaned,
		DeletedCount: len(r.Deleted),
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}

// SourceCount returns the number of merged files.
func (r MergeRecord) SourceCount() int {
	return len(r.Sources)
}
