package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List document types present in the store",
	Long: `List the distinct document type tags present in the configured
dataset, one per line, sorted alphabetically.`,
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	client, err := newStoreClient(cfg, logger)
	if err != nil {
		return err
	}

	types, err := client.Types(cmd.Context())
	if err != nil {
		return err
	}

	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}
