package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"portico-hq/portico/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate the configuration file without running anything.

Reports every validation failure with its field path:

  $ portico validate --config config.yaml
  ✗ Configuration invalid:
    - export.format: must be 'structured' or 'tabular', got "xml"
    - schedule.jobs[0].cron: invalid cron expression`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, err := config.LoadWithEnvOverrides(cfgFile)
	if err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(cmd.ErrOrStderr(), "✗ Configuration invalid:")
			for _, fe := range verr.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("%d validation errors", len(verr.Errors))
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration valid: %s\n", cfgFile)
	return nil
}
