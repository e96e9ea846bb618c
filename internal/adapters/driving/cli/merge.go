package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
)

var (
	mergeDir       string
	mergeOutput    string
	mergePattern   string
	mergeSeparator string
	mergeClean     bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge HTML files into one document",
	Long: `Merge the bodies of HTML files into a single <html><body> document.

Files given as arguments are merged in the order given. With --dir, every
regular, non-hidden file in the directory is merged in name order; --pattern
restricts the listing to matching names.

Examples:
  htmlmerge merge header.html body.html footer.html -o page.html
  htmlmerge merge --dir parts --pattern '*.html'
  htmlmerge merge --dir parts --clean`,
	Args: cobra.ArbitraryArgs,
	RunE: runMerge,
}

func init() {
	addMergeFlags(mergeCmd)
	rootCmd.AddCommand(mergeCmd)
}

// addMergeFlags registers the input and output flags shared by merge commands.
func addMergeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&mergeDir, "dir", "d", "", "merge every file in this directory except dot-files")
	cmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output file (default merged.html)")
	cmd.Flags().StringVar(&mergePattern, "pattern", "", "file name glob applied with --dir")
	cmd.Flags().StringVar(&mergeSeparator, "separator", domain.DefaultSeparator, "text placed between fragments")
	cmd.Flags().BoolVar(&mergeClean, "clean", false, "delete source files after a successful merge")
}

func runMerge(cmd *cobra.Command, args []string) error {
	if mergeService == nil {
		return errors.New("merge service not configured")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cfg := mergeConfig(cmd, args, settings)
	opts := domain.MergeOptions{Clean: settings.Merge.Clean}
	if cmd.Flags().Changed("clean") {
		opts.Clean = mergeClean
	}

	result, err := mergeService.Run(cmd.Context(), cfg, opts)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	renderResult(cmd.OutOrStdout(), stylesFor(cmd.OutOrStdout()), result)
	return nil
}

// mergeConfig builds a merge configuration from args, flags and settings.
// Flags take precedence over stored settings.
func mergeConfig(cmd *cobra.Command, args []string, settings *domain.AppSettings) driving.MergeConfig {
	cfg := driving.MergeConfig{
		Files:     args,
		Directory: mergeDir,
		Output:    settings.Merge.Output,
		Pattern:   settings.Merge.Pattern,
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = mergeOutput
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = mergePattern
	}

	separator := settings.Merge.Separator
	if cmd.Flags().Changed("separator") {
		separator = mergeSeparator
	}
	cfg.Separator = &separator

	return cfg
}

// loadSettings returns stored settings, or defaults without a settings service.
func loadSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}
