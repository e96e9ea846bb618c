package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrInputNotFound", ErrInputNotFound},
		{"ErrNoInputs", ErrNoInputs},
		{"ErrConflictingSources", ErrConflictingSources},
		{"ErrReadFailed", ErrReadFailed},
		{"ErrExtractionFailed", ErrExtractionFailed},
		{"ErrWriteFailed", ErrWriteFailed},
		{"ErrCleanInWatch", ErrCleanInWatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInputNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrExtractionFailed, ErrReadFailed))
	assert.False(t, errors.Is(ErrWriteFailed, ErrReadFailed))
}

func TestMergeError_Error(t *testing.T) {
	t.Run("with path and cause", func(t *testing.T) {
		err := NewMergeError(StageRead, "a.html", ErrReadFailed, errors.New("permission denied"))
		assert.Equal(t, "read a.html: read failed: permission denied", err.Error())
	})

	t.Run("with path and no cause", func(t *testing.T) {
		err := NewMergeError(StageExtract, "b.html", ErrExtractionFailed, nil)
		assert.Equal(t, "extract b.html: extraction failed", err.Error())
	})

	t.Run("cause already wrapping kind", func(t *testing.T) {
		cause := fmt.Errorf("%w: no wrapper tags", ErrExtractionFailed)
		err := NewMergeError(StageExtract, "c.html", ErrExtractionFailed, cause)
		assert.Equal(t, "extract c.html: extraction failed: no wrapper tags", err.Error())
	})

	t.Run("without path", func(t *testing.T) {
		err := NewMergeError(StageResolve, "", ErrNoInputs, nil)
		assert.Equal(t, "resolve: no input files", err.Error())
	})
}

func TestMergeError_Unwrap(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "a.html", Err: fs.ErrNotExist}
	var err error = NewMergeError(StageRead, "a.html", ErrInputNotFound, cause)

	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrWriteFailed)

	var mergeErr *MergeError
	assert.True(t, errors.As(err, &mergeErr))
	assert.Equal(t, StageRead, mergeErr.Stage)
	assert.Equal(t, "a.html", mergeErr.Path)

	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestMergeError_UnwrapWithoutCause(t *testing.T) {
	err := NewMergeError(StageExtract, "x.html", ErrExtractionFailed, nil)
	assert.Len(t, err.Unwrap(), 1)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}
