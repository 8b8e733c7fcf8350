package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portico-hq/portico/pkg/document"
	"portico-hq/portico/pkg/emit"
	"portico-hq/portico/pkg/export"
	"portico-hq/portico/pkg/export/query"
	"portico-hq/portico/pkg/telemetry/metrics"
)

var exportFlags struct {
	types            []string
	createdAfter     string
	requiredFields   string
	customQuery      string
	format           string
	expandReferences bool
	depth            int
	max              int
	outputName       string
	outputDir        string
	stdout           bool
	dryRun           bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export documents from the store",
	Long: `Export documents matching the given filters.

Filters combine with logical AND: type membership, creation-date lower
bound, and field presence (any of the listed fields defined). A raw
--query overrides every filter.

Examples:
  # Export all posts as structured JSON
  portico export --types post

  # Tabular export of recent posts and pages
  portico export --types post,page --created-after 2024-01-01 --format tabular

  # Only documents with a slug or permalink
  portico export --types post --required-fields slug,permalink

  # Include documents referencing each result, two levels deep
  portico export --types author --expand-references --depth 2

  # Raw query, written to stdout
  portico export --query '*[_type == "post"][0...10]' --stdout

  # Print the query without running it
  portico export --types post --dry-run`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringSliceVarP(&exportFlags.types, "types", "t", nil, "document types to export (comma-separated)")
	exportCmd.Flags().StringVar(&exportFlags.createdAfter, "created-after", "", "creation-date lower bound (ISO date)")
	exportCmd.Flags().StringVar(&exportFlags.requiredFields, "required-fields", "", "include documents with any of these fields defined (comma-separated)")
	exportCmd.Flags().StringVarP(&exportFlags.customQuery, "query", "q", "", "raw store query (overrides all filters)")
	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", "", "output format: structured, tabular (default from config)")
	exportCmd.Flags().BoolVar(&exportFlags.expandReferences, "expand-references", false, "include documents referencing each result")
	exportCmd.Flags().IntVar(&exportFlags.depth, "depth", 1, "reference expansion depth")
	exportCmd.Flags().IntVar(&exportFlags.max, "max", 0, "maximum documents to export (default from config)")
	exportCmd.Flags().StringVar(&exportFlags.outputName, "output-name", "", "explicit output name, without extension")
	exportCmd.Flags().StringVar(&exportFlags.outputDir, "output-dir", "", "output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportFlags.stdout, "stdout", false, "write to stdout instead of a file")
	exportCmd.Flags().BoolVar(&exportFlags.dryRun, "dry-run", false, "print the query without running the export")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req := &document.ExportRequest{
		Types:            exportFlags.types,
		CreatedAfter:     exportFlags.createdAfter,
		RequiredFields:   exportFlags.requiredFields,
		CustomQuery:      exportFlags.customQuery,
		UseCustomQuery:   exportFlags.customQuery != "",
		Format:           document.Format(exportFlags.format),
		ExpandReferences: exportFlags.expandReferences,
		ReferenceDepth:   exportFlags.depth,
		MaxDocuments:     exportFlags.max,
		OutputName:       exportFlags.outputName,
	}
	if req.Format == "" {
		req.Format = document.Format(cfg.Export.Format)
	}
	if req.MaxDocuments == 0 {
		req.MaxDocuments = cfg.Export.MaxDocuments
	}

	if exportFlags.dryRun {
		resolved := *req
		query.ApplyDefaults(&resolved)
		if err := query.Validate(&resolved); err != nil {
			return err
		}
		fmt.Println(query.Build(&resolved))
		return nil
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	client, err := newStoreClient(cfg, logger)
	if err != nil {
		return err
	}

	var emitter document.Emitter
	if exportFlags.stdout {
		emitter = emit.NewWriterEmitter(os.Stdout)
	} else {
		dir := exportFlags.outputDir
		if dir == "" {
			dir = cfg.Export.OutputDir
		}
		emitter = emit.NewFileEmitter(dir, logger.Slog())
	}

	runs, err := openHistory(cfg)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	if runs != nil {
		defer runs.Close()
	}

	opts := []export.Option{
		resultOutput(cmd),
		export.WithLogger(logger.Slog()),
		export.WithMetrics(metrics.NewCollector(cfg.Telemetry.Metrics)),
		export.WithResetDelay(0),
	}
	if runs != nil {
		opts = append(opts, export.WithRecorder(runs))
	}

	orchestrator := export.New(client, emitter, opts...)
	return orchestrator.Run(cmd.Context(), req)
}

// resultOutput reports completion on the command's output stream. Results
// go to stderr when exporting to stdout so the content stays clean.
func resultOutput(cmd *cobra.Command) export.Option {
	out := cmd.OutOrStdout()
	if exportFlags.stdout {
		out = cmd.ErrOrStderr()
	}
	return export.WithCallbacks(export.Callbacks{
		OnComplete: func(result document.ExportResult) {
			if result.Exported == 0 {
				fmt.Fprintln(out, "No documents matched; nothing exported")
				return
			}
			target := result.Filename
			if exportFlags.stdout {
				target = "stdout"
			}
			fmt.Fprintf(out, "Exported %d documents (%s) to %s\n", result.Exported, result.Format, target)
		},
		OnError: func(err error) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Export failed: %v\n", err)
		},
	})
}
