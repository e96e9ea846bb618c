package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/watcher"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-merge a directory whenever it changes",
	Long: `Merge a directory once, then again every time a file in it is created,
changed or removed. Changes to the output file and hidden files are ignored.

Sources are never deleted in watch mode, so --clean is rejected.

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addMergeFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "minimum time between merges (default from config, 500ms)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if mergeService == nil {
		return errors.New("merge service not configured")
	}
	if cmd.Flags().Changed("clean") && mergeClean {
		return domain.ErrCleanInWatch
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cfg := mergeConfig(cmd, nil, settings)
	dir, err := watchDirectory(cfg.Directory)
	if err != nil {
		return err
	}
	cfg.Directory = dir
	if cfg.Output == "" {
		cfg.Output = filepath.Join(dir, domain.DefaultOutputName)
	} else if !filepath.IsAbs(cfg.Output) {
		if cfg.Output, err = filepath.Abs(cfg.Output); err != nil {
			return fmt.Errorf("resolve output: %w", err)
		}
	}

	interval := settings.Watch.Interval
	if cmd.Flags().Changed("interval") {
		interval = watchInterval
	}

	out := cmd.OutOrStdout()
	styles := stylesFor(out)
	merge := func(ctx context.Context) error {
		result, err := mergeService.Run(ctx, cfg, domain.MergeOptions{})
		if err != nil {
			return err
		}
		renderResult(out, styles, result)
		return nil
	}

	w, err := watcher.New(dir, cfg.Pattern, cfg.Output, merge, watcher.Options{Interval: interval})
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return w.Run(ctx)
}

// watchDirectory returns the absolute directory to watch, defaulting to the
// working directory.
func watchDirectory(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInputNotFound, dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}
	return abs, nil
}
