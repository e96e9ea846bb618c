package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/htmlmerge/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/htmlmerge/internal/logger"
)

const (
	// DefaultInterval is the minimum time between two merges.
	DefaultInterval = 500 * time.Millisecond

	// DefaultSettle is how long the directory must be quiet before merging.
	DefaultSettle = 100 * time.Millisecond
)

// MergeFunc performs one merge of the watched directory.
type MergeFunc func(ctx context.Context) error

// Options tunes a Watcher.
type Options struct {
	// Interval is the minimum time between two merges.
	Interval time.Duration

	// Settle is the quiet period after the last event before merging.
	Settle time.Duration

	// OnMerge, if set, is called after every merge with its error.
	OnMerge func(err error)
}

// Watcher watches a directory and merges it on change.
type Watcher struct {
	dir     string
	pattern string
	output  string
	merge   MergeFunc
	onMerge func(error)

	limiter *rate.Limiter
	settle  time.Duration

	merges atomic.Int64
}

// New creates a watcher for dir. Changes to output, hidden files and
// in-progress temp files are ignored. If pattern is set, only matching
// file names trigger a merge.
func New(dir, pattern, output string, merge MergeFunc, opts Options) (*Watcher, error) {
	if dir == "" {
		return nil, errors.New("watch directory is required")
	}
	if merge == nil {
		return nil, errors.New("merge function is required")
	}
	if pattern != "" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	settle := opts.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}

	return &Watcher{
		dir:     filepath.Clean(dir),
		pattern: pattern,
		output:  filepath.Clean(output),
		merge:   merge,
		onMerge: opts.OnMerge,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		settle:  settle,
	}, nil
}

// Merges returns the number of merges run so far.
func (w *Watcher) Merges() int {
	return int(w.merges.Load())
}

// Run merges once, then again after every relevant change, until ctx is
// cancelled. Merge failures are reported and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Info("Watching %s", w.dir)

	w.runMerge(ctx)

	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Change: %s %s", event.Op, event.Name)
			pending = true
			timer.Reset(w.settle)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			w.runMerge(ctx)
		}
	}
}

func (w *Watcher) runMerge(ctx context.Context) {
	if err := w.limiter.Wait(ctx); err != nil {
		return
	}

	err := w.merge(ctx)
	w.merges.Add(1)
	if err != nil && ctx.Err() == nil {
		logger.Warn("merge failed: %v", err)
	}
	if w.onMerge != nil {
		w.onMerge(err)
	}
}

// relevant reports whether event should trigger a merge.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	name := filepath.Clean(event.Name)
	if name == w.output {
		return false
	}
	if filepath.Dir(name) != w.dir {
		return false
	}

	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || filesystem.IsTempFile(base) {
		return false
	}
	if w.pattern != "" {
		if ok, _ := filepath.Match(w.pattern, base); !ok {
			return false
		}
	}

	if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			return false
		}
	}
	return true
}
