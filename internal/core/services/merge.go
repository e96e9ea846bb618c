package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driven"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
	"github.com/custodia-labs/htmlmerge/internal/logger"
)

// Ensure MergeService implements the interface.
var _ driving.MergeService = (*MergeService)(nil)

// MergeService resolves inputs, extracts fragments and writes merged documents.
type MergeService struct {
	extractor driven.FragmentExtractor
	writer    driven.DocumentWriter
	history   driven.HistoryStore

	getwd func() (string, error)
	now   func() time.Time
	newID func() string
}

// NewMergeService creates a new merge service.
func NewMergeService(extractor driven.FragmentExtractor, writer driven.DocumentWriter) *MergeService {
	return &MergeService{
		extractor: extractor,
		writer:    writer,
		getwd:     os.Getwd,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// SetHistoryStore enables recording of completed merges.
func (s *MergeService) SetHistoryStore(history driven.HistoryStore) {
	s.history = history
}

// Resolve validates cfg and builds the ordered input sequence.
func (s *MergeService) Resolve(cfg driving.MergeConfig) (*domain.MergeRequest, error) {
	if len(cfg.Files) > 0 && cfg.Directory != "" {
		return nil, domain.NewMergeError(domain.StageResolve, "", domain.ErrConflictingSources, nil)
	}

	cwd, err := s.getwd()
	if err != nil {
		return nil, domain.NewMergeError(domain.StageResolve, "", domain.ErrInvalidInput,
			fmt.Errorf("getting working directory: %w", err))
	}

	separator := domain.DefaultSeparator
	if cfg.Separator != nil {
		separator = *cfg.Separator
	}

	if len(cfg.Files) > 0 {
		return s.resolveFiles(cwd, cfg, separator)
	}
	return s.resolveDirectory(cwd, cfg, separator)
}

func (s *MergeService) resolveFiles(cwd string, cfg driving.MergeConfig, separator string) (*domain.MergeRequest, error) {
	logger.Section("Resolve Files")

	sources := make([]string, 0, len(cfg.Files))
	for _, f := range cfg.Files {
		path := absPath(cwd, f)
		info, err := os.Stat(path)
		if err != nil {
			return nil, statError(f, err)
		}
		if !info.Mode().IsRegular() {
			return nil, domain.NewMergeError(domain.StageResolve, f, domain.ErrInvalidInput,
				errors.New("not a regular file"))
		}
		logger.Debug("Source: %s", path)
		sources = append(sources, path)
	}

	output := filepath.Join(cwd, domain.DefaultOutputName)
	if cfg.Output != "" {
		output = absPath(cwd, cfg.Output)
	}
	logger.Debug("Output: %s", output)

	return newRequest(domain.SourceFiles, "", sources, output, separator)
}

func (s *MergeService) resolveDirectory(cwd string, cfg driving.MergeConfig, separator string) (*domain.MergeRequest, error) {
	logger.Section("Resolve Directory")

	dir := cwd
	if cfg.Directory != "" {
		dir = absPath(cwd, cfg.Directory)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, statError(dir, err)
	}
	if !info.IsDir() {
		return nil, domain.NewMergeError(domain.StageResolve, dir, domain.ErrInvalidInput,
			errors.New("not a directory"))
	}

	output := filepath.Join(dir, domain.DefaultOutputName)
	if cfg.Output != "" {
		output = absPath(cwd, cfg.Output)
	}

	sources, err := listDirectory(dir, cfg.Pattern, output)
	if err != nil {
		return nil, err
	}
	logger.Debug("Directory: %s (%d files)", dir, len(sources))
	logger.Debug("Output: %s", output)

	return newRequest(domain.SourceDirectory, dir, sources, output, separator)
}

// listDirectory returns the regular, non-hidden files of dir matching
// pattern, excluding output, sorted by name.
func listDirectory(dir, pattern, output string) ([]string, error) {
	if pattern != "" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, domain.NewMergeError(domain.StageResolve, pattern, domain.ErrInvalidInput, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.NewMergeError(domain.StageResolve, dir, domain.ErrReadFailed, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if pattern != "" {
			if ok, _ := filepath.Match(pattern, name); !ok {
				continue
			}
		}
		names = append(names, name)
	}
	// The filesystem gives no ordering guarantee worth relying on.
	sort.Strings(names)

	sources := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if samePath(path, output) {
			logger.Debug("Skipping output file: %s", path)
			continue
		}
		logger.Debug("Source: %s", path)
		sources = append(sources, path)
	}
	return sources, nil
}

func newRequest(kind domain.SourceKind, dir string, sources []string, output, separator string) (*domain.MergeRequest, error) {
	req, err := domain.NewMergeRequest(kind, dir, sources, output, separator)
	if err != nil {
		return nil, domain.NewMergeError(domain.StageResolve, dir, err, nil)
	}
	return req, nil
}

// Merge reads every source, extracts its fragment, writes the merged
// document and, if requested, deletes the sources. Nothing is written or
// deleted unless every source was extracted.
func (s *MergeService) Merge(
	ctx context.Context,
	req *domain.MergeRequest,
	opts domain.MergeOptions,
) (*domain.MergeResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidInput
	}
	if s.extractor == nil || s.writer == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Merge")
	started := s.now()
	sources := req.Sources()

	doc := domain.MergedDocument{Separator: req.Separator()}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(src)
		if err != nil {
			kind := domain.ErrReadFailed
			if errors.Is(err, fs.ErrNotExist) {
				kind = domain.ErrInputNotFound
			}
			return nil, domain.NewMergeError(domain.StageRead, src, kind, err)
		}

		fragment, err := s.extractor.Extract(src, content)
		if err != nil {
			return nil, domain.NewMergeError(domain.StageExtract, src, domain.ErrExtractionFailed, err)
		}
		logger.Debug("Extracted %d bytes from %s (%s)", len(fragment.Content), src, fragment.Pattern)
		doc.Fragments = append(doc.Fragments, fragment)
	}

	data := doc.Render()
	if err := s.writer.Write(ctx, req.Output(), data); err != nil {
		return nil, domain.NewMergeError(domain.StageWrite, req.Output(), domain.ErrWriteFailed, err)
	}
	logger.Info("Wrote %d bytes to %s", len(data), req.Output())

	result := &domain.MergeResult{
		ID:           s.newID(),
		Output:       req.Output(),
		Sources:      sources,
		Kind:         req.Kind(),
		Directory:    req.Directory(),
		BytesWritten: len(data),
		Cleaned:      opts.Clean,
		StartedAt:    started,
	}

	if opts.Clean {
		cleanSources(req.Output(), sources, result)
	}

	result.FinishedAt = s.now()
	s.record(ctx, result)

	return result, nil
}

// Run resolves cfg and merges it.
func (s *MergeService) Run(
	ctx context.Context,
	cfg driving.MergeConfig,
	opts domain.MergeOptions,
) (*domain.MergeResult, error) {
	req, err := s.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return s.Merge(ctx, req, opts)
}

// cleanSources deletes merged sources. A source that is the output file is
// kept. Deletion failures are collected, not returned.
func cleanSources(output string, sources []string, result *domain.MergeResult) {
	logger.Section("Clean")

	seen := make(map[string]bool, len(sources))
	for _, src := range sources {
		if seen[src] {
			continue
		}
		seen[src] = true

		if samePath(src, output) {
			logger.Debug("Keeping %s: merged in place", src)
			result.Skipped = append(result.Skipped, src)
			continue
		}

		if err := os.Remove(src); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("Already removed: %s", src)
				continue
			}
			logger.Warn("could not delete %s: %v", src, err)
			result.CleanFailures = append(result.CleanFailures, domain.CleanFailure{Path: src, Err: err})
			continue
		}
		logger.Debug("Deleted %s", src)
		result.Deleted = append(result.Deleted, src)
	}
}

// record saves the result in the history store, if one is configured.
func (s *MergeService) record(ctx context.Context, result *domain.MergeResult) {
	if s.history == nil {
		return
	}
	if err := s.history.Save(ctx, domain.NewMergeRecord(result)); err != nil {
		logger.Warn("could not record merge history: %v", err)
	}
}

// statError classifies a failed stat of a supplied input path.
func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewMergeError(domain.StageResolve, path, domain.ErrInputNotFound, err)
	}
	return domain.NewMergeError(domain.StageResolve, path, domain.ErrReadFailed, err)
}

func absPath(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

// samePath reports whether a and b name the same file, either textually or
// by resolving to the same inode.
func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
