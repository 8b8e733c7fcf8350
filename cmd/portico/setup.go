package main

import (
	"fmt"

	"portico-hq/portico/pkg/config"
	"portico-hq/portico/pkg/history"
	"portico-hq/portico/pkg/store"
	"portico-hq/portico/pkg/telemetry/logging"
)

// loadConfig loads configuration for a command, falling back to defaults
// when no config file exists. The --verbose flag forces debug logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the configured logger and installs it as the process
// default.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.New(cfg.Telemetry.Logging, nil)
	if err != nil {
		return nil, err
	}
	logger.SetDefault()
	return logger, nil
}

// newStoreClient builds the document store client.
func newStoreClient(cfg *config.Config, logger *logging.Logger) (*store.Client, error) {
	return store.NewClient(cfg.Store, logger.Slog())
}

// openHistory opens the run-history backend, or returns nil when history
// is disabled.
func openHistory(cfg *config.Config) (history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	sqliteCfg := history.DefaultSQLiteConfig()
	sqliteCfg.Path = cfg.History.Path
	return history.NewSQLiteStore(sqliteCfg)
}
