package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portico",
	Short: "Portico - document store export tool",
	Long: `Portico exports documents from a GROQ-queryable content store.

It builds store queries from filters or raw query strings, fetches the
matching documents, and writes them out as:
  - Structured JSON preserving the full nested document structure
  - Tabular CSV with one row per document

Exports can expand inbound references, run on cron schedules, and are
recorded in a local run history.

For more information, visit: https://github.com/portico-hq/portico`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
