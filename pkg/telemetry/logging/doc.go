// Package logging provides structured logging built on log/slog.
//
// Loggers are configured from the telemetry section of the configuration
// and emit JSON by default. Subsystems obtain tagged child loggers via
// Component:
//
//	logger, err := logging.New(cfg.Telemetry.Logging, nil)
//	exportLog := logger.Component("export")
//
// SetDefault installs the configured handler process-wide so packages that
// fall back to slog.Default() share it.
package logging
