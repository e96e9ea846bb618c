// Package cli provides the cobra command tree for htmlmerge.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
	"github.com/custodia-labs/htmlmerge/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services used by commands. Set by SetServices or the Bootstrap function.
var (
	mergeService    driving.MergeService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
)

// Global flags.
var (
	verbose   bool
	configDir string
	noHistory bool
)

// GlobalOptions carries the global flags needed to build services.
type GlobalOptions struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// NoHistory disables the history database.
	NoHistory bool
}

// Services bundles the driving ports used by the commands.
type Services struct {
	Merge    driving.MergeService
	History  driving.HistoryService
	Settings driving.SettingsService

	// Close releases resources held by the services. Optional.
	Close func() error
}

// Bootstrap builds services once global flags are parsed.
type Bootstrap func(opts GlobalOptions) (*Services, error)

var (
	bootstrap     Bootstrap
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "htmlmerge [files...]",
	Short: "Merge the bodies of HTML files into one document",
	Long: `htmlmerge extracts the content between the <html><body> wrapper tags of
several HTML files and writes them, in order, into a single HTML document.

Pass files explicitly to merge them in the given order, or use --dir to merge
every file in a directory sorted by name. Without either, the current
directory is merged.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMerge,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress details")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.htmlmerge)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record merges in the history database")
	addMergeFlags(rootCmd)
}

// SetServices injects services directly, bypassing Bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	mergeService = s.Merge
	historyService = s.History
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the command tree. If b is non-nil it is called after flag
// parsing to build the services.
func Execute(ctx context.Context, b Bootstrap) error {
	bootstrap = b
	err := rootCmd.ExecuteContext(ctx)
	if cerr := teardown(); err == nil {
		err = cerr
	}
	return err
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}
	services, err := bootstrap(GlobalOptions{ConfigDir: configDir, NoHistory: noHistory})
	if err != nil {
		return err
	}
	if services == nil {
		return errors.New("bootstrap returned no services")
	}
	SetServices(services)
	closeServices = services.Close
	return nil
}

func teardown() error {
	defer logger.Sync() //nolint:errcheck
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}
