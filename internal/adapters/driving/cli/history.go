package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent merges",
	Long: `List merges recorded in the history database, newest first.

History is kept in ~/.htmlmerge/data/history.db unless disabled with
--no-history or the history.enabled setting.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a recorded merge",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of merges (default from config, 20)")
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	limit := historyLimit
	if !cmd.Flags().Changed("limit") {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		limit = settings.History.Limit
	}

	records, err := historyService.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, records)
	}
	renderHistory(cmd.OutOrStdout(), stylesFor(cmd.OutOrStdout()), records)
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	record, err := historyService.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no merge with id %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get merge: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, record)
	}
	renderRecord(cmd.OutOrStdout(), stylesFor(cmd.OutOrStdout()), record)
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
