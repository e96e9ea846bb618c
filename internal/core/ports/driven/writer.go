package driven

import "context"

// DocumentWriter persists a merged document.
// Implementations must write all-or-nothing: after a failed Write the
// target path holds either its previous content or nothing.
type DocumentWriter interface {
	// Write replaces the file at path with data, creating parent
	// directories as needed.
	Write(ctx context.Context, path string, data []byte) error
}
