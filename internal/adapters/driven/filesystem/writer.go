package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/htmlmerge/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// DefaultFileMode is the permission of newly created documents.
const DefaultFileMode os.FileMode = 0644

// Writer writes documents atomically. Data goes to a hidden temp file next
// to the target, which is then renamed over it, so readers never see a
// partially written file. Replacing an existing file keeps its permissions.
type Writer struct {
	mode os.FileMode
}

// NewWriter creates a writer producing new files with DefaultFileMode.
func NewWriter() *Writer {
	return &Writer{mode: DefaultFileMode}
}

// modeFor returns the permissions of the file at path, or the writer's
// default when path does not exist yet.
func (w *Writer) modeFor(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return w.mode
	}
	return info.Mode().Perm()
}

// Write replaces path with data.
func (w *Writer) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmpPath := TempPath(path)
	if err := writeTemp(tmpPath, data, w.modeFor(path)); err != nil {
		os.Remove(tmpPath) //nolint:errcheck
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) //nolint:errcheck
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func writeTemp(tmpPath string, data []byte, mode os.FileMode) error {
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	// OpenFile applies the umask; set the mode explicitly.
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	return nil
}

// TempPath returns a unique hidden sibling of path used while writing.
func TempPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+TempSuffix)
}

// TempSuffix marks in-progress writes.
const TempSuffix = ".tmp"

// IsTempFile reports whether name looks like a file created by TempPath.
func IsTempFile(name string) bool {
	base := filepath.Base(name)
	return len(base) > 1 && base[0] == '.' && filepath.Ext(base) == TempSuffix
}
