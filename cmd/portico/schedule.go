package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"portico-hq/portico/pkg/config"
	"portico-hq/portico/pkg/emit"
	"portico-hq/portico/pkg/export"
	"portico-hq/portico/pkg/schedule"
	"portico-hq/portico/pkg/telemetry/metrics"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run configured export jobs on their cron schedules",
	Long: `Run the export jobs from the schedule section of the configuration
on their cron schedules until interrupted.

The process watches the config file and reloads the job set on change,
and exposes Prometheus metrics on the configured listen address.

Example configuration:

  schedule:
    metrics_listen_address: "127.0.0.1:9090"
    jobs:
      - name: "nightly-posts"
        cron: "0 3 * * *"
        types: ["post"]
        format: "structured"`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithEnvOverrides(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	log := logger.Component("schedule")

	client, err := newStoreClient(cfg, logger)
	if err != nil {
		return err
	}

	runs, err := openHistory(cfg)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	if runs != nil {
		defer runs.Close()
	}

	collector := metrics.NewCollector(cfg.Telemetry.Metrics)

	opts := []export.Option{
		export.WithLogger(logger.Slog()),
		export.WithMetrics(collector),
		export.WithResetDelay(export.DefaultResetDelay),
	}
	if runs != nil {
		opts = append(opts, export.WithRecorder(runs))
	}
	orchestrator := export.New(client, emit.NewFileEmitter(cfg.Export.OutputDir, logger.Slog()), opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewScheduler(orchestrator, logger.Slog())
	if err := scheduler.Start(ctx, cfg.Schedule.Jobs); err != nil {
		return err
	}
	defer scheduler.Stop()

	if next := scheduler.NextRun(); next != nil {
		log.Info("next scheduled export", "at", next.Format(time.RFC3339))
	}

	// Metrics endpoint.
	var metricsServer *http.Server
	if cfg.Schedule.MetricsListenAddress != "" && collector != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Schedule.MetricsListenAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("metrics endpoint listening", "address", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", "error", err)
			}
		}()
	}

	// Hot reload of the job set on config change.
	watcher, err := config.NewWatcher(cfgFile, logger.Slog())
	if err != nil {
		return err
	}
	go func() {
		err := watcher.Watch(ctx, func() error {
			reloaded, err := config.LoadWithEnvOverrides(cfgFile)
			if err != nil {
				return err
			}
			return scheduler.Reload(ctx, reloaded.Schedule.Jobs)
		})
		if err != nil {
			log.Error("config watcher failed", "error", err)
		}
	}()

	log.Info("schedule mode started", "jobs", len(cfg.Schedule.Jobs), "config", cfgFile)
	<-ctx.Done()
	log.Info("shutting down")

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}
	_ = watcher.Stop()

	return nil
}
