package config

import "time"

// Config is the root configuration structure for Portico. It contains all
// configuration sections: the document store connection, export defaults,
// run history, scheduled exports, and telemetry.
type Config struct {
	// Store contains the document store connection settings.
	Store StoreConfig `yaml:"store"`

	// Export contains defaults applied to export requests.
	Export ExportConfig `yaml:"export"`

	// History contains run-history persistence settings.
	History HistoryConfig `yaml:"history"`

	// Schedule contains scheduled export jobs and the settings of the
	// long-running schedule mode.
	Schedule ScheduleConfig `yaml:"schedule"`

	// Telemetry contains observability configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// StoreConfig contains the document store connection settings.
type StoreConfig struct {
	// Endpoint is the base URL of the document store's query API.
	// Required for commands that talk to the store.
	Endpoint string `yaml:"endpoint"`

	// Dataset is the dataset name queries run against.
	// Default: "production"
	Dataset string `yaml:"dataset"`

	// Token is the bearer token for authenticated stores. Empty disables
	// the Authorization header.
	Token string `yaml:"token"`

	// Timeout is the per-request timeout.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`

	// MaxIdleConns is the connection pool size.
	// Default: 10
	MaxIdleConns int `yaml:"max_idle_conns"`

	// MaxIdleConnsPerHost is the per-host connection pool size.
	// Default: 10
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host"`

	// IdleConnTimeout is how long idle connections are kept open.
	// Default: 90s
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

// ExportConfig contains defaults applied to export requests.
type ExportConfig struct {
	// MaxDocuments is the default document bound when a request does not
	// specify one.
	// Default: 1000
	MaxDocuments int `yaml:"max_documents"`

	// Format is the default output format ("structured" or "tabular").
	// Default: "structured"
	Format string `yaml:"format"`

	// OutputDir is the directory exported files are written to.
	// Default: "exports"
	OutputDir string `yaml:"output_dir"`

	// MaxReferenceDepth caps the reference expansion depth accepted from
	// requests.
	// Default: 5
	MaxReferenceDepth int `yaml:"max_reference_depth"`
}

// HistoryConfig contains run-history persistence settings.
type HistoryConfig struct {
	// Enabled controls whether export runs are recorded.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	// Default: "data/history.db"
	Path string `yaml:"path"`

	// RetentionDays is how long run records are kept. Zero disables
	// pruning.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`
}

// ScheduleConfig contains scheduled export jobs and schedule-mode settings.
type ScheduleConfig struct {
	// MetricsListenAddress is the address the Prometheus metrics endpoint
	// listens on in schedule mode. Empty disables the endpoint.
	// Default: "127.0.0.1:9090"
	MetricsListenAddress string `yaml:"metrics_listen_address"`

	// Jobs is the list of scheduled export jobs.
	Jobs []JobConfig `yaml:"jobs"`
}

// JobConfig describes one scheduled export job.
type JobConfig struct {
	// Name identifies the job in logs and errors.
	Name string `yaml:"name"`

	// Cron is the job's schedule in standard cron syntax
	// (e.g. "0 3 * * *" for daily at 3 AM).
	Cron string `yaml:"cron"`

	// Types is the set of document types the job exports.
	Types []string `yaml:"types"`

	// CreatedAfter is an optional creation-date lower bound (ISO date).
	CreatedAfter string `yaml:"created_after"`

	// RequiredFields is an optional comma-separated field-presence filter.
	RequiredFields string `yaml:"required_fields"`

	// CustomQuery, when non-empty, overrides every other filter.
	CustomQuery string `yaml:"custom_query"`

	// Format is the output format ("structured" or "tabular").
	// Default: the export section's default format.
	Format string `yaml:"format"`

	// ExpandReferences enables reference expansion.
	ExpandReferences bool `yaml:"expand_references"`

	// ReferenceDepth is the expansion depth when enabled.
	ReferenceDepth int `yaml:"reference_depth"`

	// MaxDocuments bounds the job's result size.
	// Default: the export section's default bound.
	MaxDocuments int `yaml:"max_documents"`

	// OutputName is an optional explicit output name (without extension).
	OutputName string `yaml:"output_name"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text", "console").
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in logs.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "portico"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric name subsystem component.
	// Default: "export"
	Subsystem string `yaml:"subsystem"`

	// DurationBuckets are the histogram buckets, in seconds, for export
	// and fetch durations.
	DurationBuckets []float64 `yaml:"duration_buckets"`
}
