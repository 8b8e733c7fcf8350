package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyFlags struct {
	limit  int
	format string
	days   int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the export run history",
	Long: `Inspect and maintain the local export run history.

Subcommands:
  list   - Show recent export runs
  prune  - Delete runs older than the retention period

Examples:
  # Show the last 20 runs
  portico history list

  # Show the last 5 runs as JSON
  portico history list --limit 5 --format json

  # Delete runs older than 30 days
  portico history prune --days 30`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent export runs",
	RunE:  runHistoryList,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention period",
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyPruneCmd)

	historyListCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "max runs to show")
	historyListCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")

	historyPruneCmd.Flags().IntVar(&historyFlags.days, "days", 0, "retention in days (default from config)")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("run history is disabled in the configuration")
	}

	runs, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer runs.Close()

	recent, err := runs.Recent(cmd.Context(), historyFlags.limit)
	if err != nil {
		return err
	}

	if historyFlags.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(recent)
	}

	if len(recent) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No export runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSTATUS\tFORMAT\tEXPORTED\tFILENAME\tERROR")
	for _, run := range recent {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Status,
			run.Format,
			run.Exported,
			run.Filename,
			run.Error,
		)
	}
	return w.Flush()
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("run history is disabled in the configuration")
	}

	days := historyFlags.days
	if days == 0 {
		days = cfg.History.RetentionDays
	}
	if days <= 0 {
		return fmt.Errorf("retention days must be > 0 (set --days or history.retention_days)")
	}

	runs, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer runs.Close()

	deleted, err := runs.Prune(cmd.Context(), days)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d runs older than %d days\n", deleted, days)
	return nil
}
