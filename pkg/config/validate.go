package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g. "store.endpoint").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. All field errors are collected and returned together.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any rule fails. Returns nil if the configuration is valid.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateStore(&cfg.Store)...)
	errs = append(errs, validateExport(&cfg.Export)...)
	errs = append(errs, validateSchedule(&cfg.Schedule)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateStore(cfg *StoreConfig) []FieldError {
	var errs []FieldError

	// The endpoint is only required by commands that talk to the store;
	// its shape is validated here when present.
	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, FieldError{
				Field:   "store.endpoint",
				Message: fmt.Sprintf("must be a valid URL with scheme and host, got %q", cfg.Endpoint),
			})
		}
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{Field: "store.timeout", Message: "must not be negative"})
	}

	return errs
}

func validateExport(cfg *ExportConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxDocuments <= 0 {
		errs = append(errs, FieldError{Field: "export.max_documents", Message: "must be greater than zero"})
	}
	if cfg.Format != "structured" && cfg.Format != "tabular" {
		errs = append(errs, FieldError{
			Field:   "export.format",
			Message: fmt.Sprintf("must be 'structured' or 'tabular', got %q", cfg.Format),
		})
	}
	if cfg.MaxReferenceDepth < 0 {
		errs = append(errs, FieldError{Field: "export.max_reference_depth", Message: "must not be negative"})
	}

	return errs
}

func validateSchedule(cfg *ScheduleConfig) []FieldError {
	var errs []FieldError

	seen := make(map[string]bool)
	for i, job := range cfg.Jobs {
		field := fmt.Sprintf("schedule.jobs[%d]", i)

		if job.Name == "" {
			errs = append(errs, FieldError{Field: field + ".name", Message: "is required"})
		} else if seen[job.Name] {
			errs = append(errs, FieldError{Field: field + ".name", Message: fmt.Sprintf("duplicate job name %q", job.Name)})
		}
		seen[job.Name] = true

		if job.Cron == "" {
			errs = append(errs, FieldError{Field: field + ".cron", Message: "is required"})
		} else if _, err := cron.ParseStandard(job.Cron); err != nil {
			errs = append(errs, FieldError{
				Field:   field + ".cron",
				Message: fmt.Sprintf("invalid cron expression %q: %v", job.Cron, err),
			})
		}

		if len(job.Types) == 0 && job.CustomQuery == "" {
			errs = append(errs, FieldError{
				Field:   field,
				Message: "must select at least one type or set a custom query",
			})
		}
	}

	return errs
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("must be debug, info, warn, or error, got %q", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "json", "text", "console":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("must be json, text, or console, got %q", cfg.Logging.Format),
		})
	}

	return errs
}
