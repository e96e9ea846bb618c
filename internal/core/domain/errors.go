package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent merge failures by kind.
// Adapters wrap them with context; callers test with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required port was not provided.
	ErrNotImplemented = errors.New("not implemented")

	// Merge Errors.

	// ErrInputNotFound indicates a supplied file or directory does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrNoInputs indicates the resolved input sequence is empty.
	ErrNoInputs = errors.New("no input files")

	// ErrConflictingSources indicates both a file list and a directory were given.
	ErrConflictingSources = errors.New("cannot specify both input files and input directory")

	// ErrReadFailed indicates a source file exists but could not be read.
	ErrReadFailed = errors.New("read failed")

	// ErrExtractionFailed indicates a source has neither recognised wrapper pattern.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrWriteFailed indicates the output file could not be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrCleanInWatch indicates clean was requested for a watched directory.
	ErrCleanInWatch = errors.New("clean is not supported in watch mode")
)

// Stage names the step of a merge in which an error occurred.
type Stage string

// Merge stages in execution order.
const (
	StageResolve Stage = "resolve"
	StageRead    Stage = "read"
	StageExtract Stage = "extract"
	StageWrite   Stage = "write"
	StageClean   Stage = "clean"
)

// MergeError describes a failed merge with the stage and file involved.
// It unwraps to both the error kind (one of the sentinels above) and the
// underlying cause, if any.
type MergeError struct {
	Stage Stage
	Path  string
	Kind  error
	Cause error
}

// NewMergeError creates a MergeError.
func NewMergeError(stage Stage, path string, kind, cause error) *MergeError {
	return &MergeError{Stage: stage, Path: path, Kind: kind, Cause: cause}
}

// Error implements the error interface.
func (e *MergeError) Error() string {
	msg := e.Kind.Error()
	switch {
	case e.Cause == nil:
	case errors.Is(e.Cause, e.Kind):
		msg = e.Cause.Error()
	default:
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Stage, msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Stage, e.Path, msg)
}

// Unwrap exposes the kind and the cause to errors.Is and errors.As.
func (e *MergeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
