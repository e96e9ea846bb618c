package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change default settings stored in ~/.htmlmerge/config.toml.

Flags given on the command line always override stored settings.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a stored setting.

Available keys:
  merge.output      default output file
  merge.pattern     default file name glob for directory merges
  merge.separator   text placed between fragments
  merge.clean       delete sources after merging (true/false)
  watch.interval    minimum time between merges in watch mode (e.g. 500ms)
  history.enabled   record merges in the history database (true/false)
  history.limit     number of merges listed by 'htmlmerge history'`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	s := stylesFor(cmd.OutOrStdout())
	cmd.Println(s.Title.Render("Current Settings"))
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[merge]")
	cmd.Printf("  output: %s\n", orDefault(settings.Merge.Output, "merged.html next to inputs"))
	cmd.Printf("  pattern: %s\n", orDefault(settings.Merge.Pattern, "all files"))
	cmd.Printf("  separator: %q\n", settings.Merge.Separator)
	cmd.Printf("  clean: %t\n", settings.Merge.Clean)
	cmd.Println()

	cmd.Println("[watch]")
	cmd.Printf("  interval: %s\n", settings.Watch.Interval)
	cmd.Println()

	cmd.Println("[history]")
	cmd.Printf("  enabled: %t\n", settings.History.Enabled)
	cmd.Printf("  limit: %d\n", settings.History.Limit)

	if unknown := unknownKeys(); len(unknown) > 0 {
		cmd.Println()
		cmd.Printf("%s unrecognised keys in config: %v\n", s.Warning.Render("Warning:"), unknown)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	cmd.Printf("Set %s = %q\n", key, value)
	return nil
}

// unknownKeys returns stored keys that no setting reads.
func unknownKeys() []string {
	var unknown []string
	for _, v := range settingsService.Values() {
		if _, ok := domain.SettingKeys[v.Key]; !ok {
			unknown = append(unknown, v.Key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func orDefault(v, fallback string) string {
	if v == "" {
		return "(" + fallback + ")"
	}
	return v
}
