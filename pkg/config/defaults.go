package config

import "time"

// Default values for configuration fields.
const (
	// Store defaults
	DefaultStoreDataset             = "production"
	DefaultStoreTimeout             = 30 * time.Second
	DefaultStoreMaxIdleConns        = 10
	DefaultStoreMaxIdleConnsPerHost = 10
	DefaultStoreIdleConnTimeout     = 90 * time.Second

	// Export defaults
	DefaultExportMaxDocuments      = 1000
	DefaultExportFormat            = "structured"
	DefaultExportOutputDir         = "exports"
	DefaultExportMaxReferenceDepth = 5

	// History defaults
	DefaultHistoryEnabled       = true
	DefaultHistoryPath          = "data/history.db"
	DefaultHistoryRetentionDays = 90

	// Schedule defaults
	DefaultMetricsListenAddress = "127.0.0.1:9090"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsNamespace = "portico"
	DefaultMetricsSubsystem = "export"
)

// Default returns a configuration populated with default values.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for unset configuration fields.
// Explicitly set values are never overwritten.
func ApplyDefaults(cfg *Config) {
	// Store defaults
	if cfg.Store.Dataset == "" {
		cfg.Store.Dataset = DefaultStoreDataset
	}
	if cfg.Store.Timeout == 0 {
		cfg.Store.Timeout = DefaultStoreTimeout
	}
	if cfg.Store.MaxIdleConns == 0 {
		cfg.Store.MaxIdleConns = DefaultStoreMaxIdleConns
	}
	if cfg.Store.MaxIdleConnsPerHost == 0 {
		cfg.Store.MaxIdleConnsPerHost = DefaultStoreMaxIdleConnsPerHost
	}
	if cfg.Store.IdleConnTimeout == 0 {
		cfg.Store.IdleConnTimeout = DefaultStoreIdleConnTimeout
	}

	// Export defaults
	if cfg.Export.MaxDocuments == 0 {
		cfg.Export.MaxDocuments = DefaultExportMaxDocuments
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = DefaultExportOutputDir
	}
	if cfg.Export.MaxReferenceDepth == 0 {
		cfg.Export.MaxReferenceDepth = DefaultExportMaxReferenceDepth
	}

	// History defaults
	if cfg.History.Path == "" {
		cfg.History.Enabled = DefaultHistoryEnabled
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = DefaultHistoryRetentionDays
	}

	// Schedule defaults
	if cfg.Schedule.MetricsListenAddress == "" {
		cfg.Schedule.MetricsListenAddress = DefaultMetricsListenAddress
	}
	for i := range cfg.Schedule.Jobs {
		job := &cfg.Schedule.Jobs[i]
		if job.Format == "" {
			job.Format = cfg.Export.Format
		}
		if job.MaxDocuments == 0 {
			job.MaxDocuments = cfg.Export.MaxDocuments
		}
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Telemetry.Metrics.DurationBuckets) == 0 {
		// Export runs range from sub-second local fetches to
		// multi-minute bulk pulls.
		cfg.Telemetry.Metrics.DurationBuckets = []float64{0.1, 0.5, 1, 5, 15, 60, 300}
	}
}
