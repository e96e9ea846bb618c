package domain

import "slices"

// DefaultOutputName is the file name used when no output path is given.
const DefaultOutputName = "merged.html"

// DefaultSeparator is inserted between fragments in the merged document.
const DefaultSeparator = "\n"

// SourceKind identifies how the input sequence was supplied.
type SourceKind int

const (
	// SourceFiles is an explicit ordered list of file paths.
	SourceFiles SourceKind = iota

	// SourceDirectory is the sorted listing of a directory.
	SourceDirectory
)

// String returns the source kind name.
func (k SourceKind) String() string {
	switch k {
	case SourceFiles:
		return "files"
	case SourceDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// MergeRequest is the resolved input of one merge: the ordered source
// paths, the output path and the fragment separator. It is built once by
// NewMergeRequest and never changes afterwards.
type MergeRequest struct {
	kind      SourceKind
	directory string
	sources   []string
	output    string
	separator string
}

// NewMergeRequest validates and freezes a merge request.
// The sources slice is copied.
func NewMergeRequest(kind SourceKind, directory string, sources []string, output, separator string) (*MergeRequest, error) {
	if len(sources) == 0 {
		return nil, ErrNoInputs
	}
	if output == "" {
		return nil, ErrInvalidInput
	}
	if kind == SourceDirectory && directory == "" {
		return nil, ErrInvalidInput
	}
	return &MergeRequest{
		kind:      kind,
		directory: directory,
		sources:   slices.Clone(sources),
		output:    output,
		separator: separator,
	}, nil
}

// Kind returns how the sources were supplied.
func (r *MergeRequest) Kind() SourceKind { return r.kind }

// Directory returns the input directory, or "" in file-list mode.
func (r *MergeRequest) Directory() string { return r.directory }

// Sources returns a copy of the ordered source paths.
func (r *MergeRequest) Sources() []string { return slices.Clone(r.sources) }

// Output returns the output file path.
func (r *MergeRequest) Output() string { return r.output }

// Separator returns the string placed between fragments.
func (r *MergeRequest) Separator() string { return r.separator }

// MergeOptions controls a single merge invocation.
type MergeOptions struct {
	// Clean deletes the source files after the output is written.
	Clean bool
}
