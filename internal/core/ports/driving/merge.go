package driving

import (
	"context"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

// MergeConfig is the unresolved input of a merge as supplied by a caller.
// At most one of Files and Directory may be set. When both are empty the
// current working directory is used.
type MergeConfig struct {
	// Files is an explicit ordered list of source paths.
	Files []string

	// Directory is a directory whose files are merged in name order.
	Directory string

	// Output is the merged file path. Defaults to merged.html in the
	// input directory, or in the working directory for file lists.
	Output string

	// Pattern is an optional glob applied to file names in directory mode.
	Pattern string

	// Separator is placed between fragments. Nil means domain.DefaultSeparator.
	Separator *string
}

// MergeService merges HTML files.
type MergeService interface {
	// Resolve validates a configuration and produces a merge request.
	Resolve(cfg MergeConfig) (*domain.MergeRequest, error)

	// Merge executes a resolved request.
	Merge(ctx context.Context, req *domain.MergeRequest, opts domain.MergeOptions) (*domain.MergeResult, error)

	// Run resolves cfg and merges it in one step.
	Run(ctx context.Context, cfg MergeConfig, opts domain.MergeOptions) (*domain.MergeResult, error)
}
