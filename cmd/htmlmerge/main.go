// Command htmlmerge merges the bodies of HTML files into one document.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/htmlmerge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/htmlmerge/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/htmlmerge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/htmlmerge/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/htmlmerge/internal/adapters/driving/cli"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driven"
	"github.com/custodia-labs/htmlmerge/internal/core/services"
	"github.com/custodia-labs/htmlmerge/internal/extractors/html"
	"github.com/custodia-labs/htmlmerge/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx, bootstrap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// openConfigStore opens the TOML config in dir. When it cannot be created
// or parsed, defaults are served from memory so merging still works.
func openConfigStore(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config unavailable, using defaults for this run: %v", err)
		return memory.NewConfigStore()
	}
	return store
}

// bootstrap wires the driven adapters into the services.
func bootstrap(opts cli.GlobalOptions) (*cli.Services, error) {
	settingsService := services.NewSettingsService(openConfigStore(opts.ConfigDir))

	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	mergeService := services.NewMergeService(html.New(), filesystem.NewWriter())

	var history driven.HistoryStore
	closeFn := func() error { return nil }

	if opts.NoHistory || !settings.History.Enabled {
		logger.Debug("History disabled, keeping merges in memory")
		history = memory.NewHistoryStore()
	} else {
		dataDir := ""
		if opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		logger.Debug("History: %s", store.Path())
		history = store.HistoryStore()
		closeFn = store.Close
	}
	mergeService.SetHistoryStore(history)

	return &cli.Services{
		Merge:    mergeService,
		History:  services.NewHistoryService(history),
		Settings: settingsService,
		Close:    closeFn,
	}, nil
}
