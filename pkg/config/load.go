package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file at the specified path, applies
// default values, and validates the result. Environment variables are not
// consulted; use LoadWithEnvOverrides for that.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Variables follow the naming convention
// PORTICO_SECTION_FIELD (e.g. PORTICO_STORE_ENDPOINT) and always take
// precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
func LoadWithEnvOverrides(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like LoadWithEnvOverrides but falls back to the
// default configuration (plus environment overrides) when the file does not
// exist. Commands that can run without a config file use this.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadWithEnvOverrides(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides using the
// PORTICO_SECTION_FIELD naming convention.
func applyEnvOverrides(cfg *Config) {
	// Store overrides
	if val := os.Getenv("PORTICO_STORE_ENDPOINT"); val != "" {
		cfg.Store.Endpoint = val
	}
	if val := os.Getenv("PORTICO_STORE_DATASET"); val != "" {
		cfg.Store.Dataset = val
	}
	if val := os.Getenv("PORTICO_STORE_TOKEN"); val != "" {
		cfg.Store.Token = val
	}
	if val := os.Getenv("PORTICO_STORE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Store.Timeout = d
		}
	}

	// Export overrides
	if val := os.Getenv("PORTICO_EXPORT_MAX_DOCUMENTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Export.MaxDocuments = n
		}
	}
	if val := os.Getenv("PORTICO_EXPORT_FORMAT"); val != "" {
		cfg.Export.Format = val
	}
	if val := os.Getenv("PORTICO_EXPORT_OUTPUT_DIR"); val != "" {
		cfg.Export.OutputDir = val
	}

	// History overrides
	if val := os.Getenv("PORTICO_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("PORTICO_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}

	// Schedule overrides
	if val := os.Getenv("PORTICO_SCHEDULE_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Schedule.MetricsListenAddress = val
	}

	// Telemetry overrides
	if val := os.Getenv("PORTICO_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("PORTICO_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
}
