package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefault tests that the default configuration is valid and carries the
// documented values.
func TestDefault(t *testing.T) {
	cfg := Default()

	if err := Validate(cfg); err != nil {
		t.Fatalf("Default configuration is invalid: %v", err)
	}
	if cfg.Store.Dataset != "production" {
		t.Errorf("Expected default dataset 'production', got %q", cfg.Store.Dataset)
	}
	if cfg.Export.MaxDocuments != 1000 {
		t.Errorf("Expected default max documents 1000, got %d", cfg.Export.MaxDocuments)
	}
	if cfg.Export.Format != "structured" {
		t.Errorf("Expected default format 'structured', got %q", cfg.Export.Format)
	}
	if !cfg.History.Enabled {
		t.Error("Expected history enabled by default")
	}
	if cfg.Telemetry.Logging.Level != "info" {
		t.Errorf("Expected default log level 'info', got %q", cfg.Telemetry.Logging.Level)
	}
}

// TestLoad tests loading a YAML file with defaults applied to unset fields.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store:
  endpoint: "https://content.example.com"
  dataset: "staging"
  timeout: 10s

export:
  format: "tabular"
  max_documents: 50

schedule:
  jobs:
    - name: "nightly"
      cron: "0 3 * * *"
      types: ["post"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Store.Endpoint != "https://content.example.com" {
		t.Errorf("Unexpected endpoint: %q", cfg.Store.Endpoint)
	}
	if cfg.Store.Dataset != "staging" {
		t.Errorf("Unexpected dataset: %q", cfg.Store.Dataset)
	}
	if cfg.Store.Timeout != 10*time.Second {
		t.Errorf("Unexpected timeout: %v", cfg.Store.Timeout)
	}
	if cfg.Export.Format != "tabular" || cfg.Export.MaxDocuments != 50 {
		t.Errorf("Export overrides not applied: %+v", cfg.Export)
	}

	// Defaults fill the gaps.
	if cfg.Export.OutputDir != DefaultExportOutputDir {
		t.Errorf("Expected default output dir, got %q", cfg.Export.OutputDir)
	}
	if len(cfg.Schedule.Jobs) != 1 {
		t.Fatalf("Expected 1 job, got %d", len(cfg.Schedule.Jobs))
	}
	// Job inherits the export section's defaults.
	if cfg.Schedule.Jobs[0].Format != "tabular" {
		t.Errorf("Expected job to inherit format 'tabular', got %q", cfg.Schedule.Jobs[0].Format)
	}
	if cfg.Schedule.Jobs[0].MaxDocuments != 50 {
		t.Errorf("Expected job to inherit max documents 50, got %d", cfg.Schedule.Jobs[0].MaxDocuments)
	}
}

// TestLoad_MissingFile tests the error for a nonexistent path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
}

// TestLoadOrDefault_MissingFile tests the default fallback.
func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() failed: %v", err)
	}
	if cfg.Export.MaxDocuments != DefaultExportMaxDocuments {
		t.Errorf("Expected default configuration, got %+v", cfg.Export)
	}
}

// TestLoadWithEnvOverrides tests that PORTICO_* variables take precedence
// over file values.
func TestLoadWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store:
  endpoint: "https://file.example.com"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("PORTICO_STORE_ENDPOINT", "https://env.example.com")
	t.Setenv("PORTICO_EXPORT_FORMAT", "tabular")
	t.Setenv("PORTICO_STORE_TIMEOUT", "5s")

	cfg, err := LoadWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadWithEnvOverrides() failed: %v", err)
	}

	if cfg.Store.Endpoint != "https://env.example.com" {
		t.Errorf("Environment override not applied: %q", cfg.Store.Endpoint)
	}
	if cfg.Export.Format != "tabular" {
		t.Errorf("Environment override not applied: %q", cfg.Export.Format)
	}
	if cfg.Store.Timeout != 5*time.Second {
		t.Errorf("Environment override not applied: %v", cfg.Store.Timeout)
	}
}

// TestValidate_CollectsErrors tests that validation reports every failure
// with its field path.
func TestValidate_CollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Export.Format = "xml"
	cfg.Export.MaxDocuments = 0
	cfg.Schedule.Jobs = []JobConfig{
		{Name: "", Cron: "not a cron", Types: []string{"post"}},
		{Name: "dup", Cron: "0 3 * * *"},
		{Name: "dup", Cron: "0 4 * * *", Types: []string{"page"}},
	}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}

	// format, max_documents, job0 name, job0 cron, job1 selection,
	// job2 duplicate name.
	if len(verr.Errors) != 6 {
		t.Errorf("Expected 6 field errors, got %d: %v", len(verr.Errors), verr)
	}
}

// TestValidate_BadEndpoint tests endpoint shape validation.
func TestValidate_BadEndpoint(t *testing.T) {
	cfg := Default()
	cfg.Store.Endpoint = "not-a-url"

	if err := Validate(cfg); err == nil {
		t.Error("Expected validation error for malformed endpoint")
	}
}
