// Package config provides configuration management for Portico.
//
// Configuration is loaded from a YAML file, filled in with defaults,
// optionally overridden from the environment, and validated:
//
//	cfg, err := config.LoadWithEnvOverrides("config.yaml")
//
// Commands that can run without a config file use LoadOrDefault, which
// falls back to defaults plus environment overrides when the file is
// absent.
//
// # Environment Variable Overrides
//
// Variables follow the naming convention PORTICO_SECTION_FIELD and always
// take precedence over file values. For example:
//
//   - PORTICO_STORE_ENDPOINT overrides store.endpoint
//   - PORTICO_STORE_TOKEN overrides store.token
//   - PORTICO_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Validation
//
// Validation collects every failure into a single ValidationError whose
// field errors carry dotted field paths:
//
//	configuration validation failed with 2 errors:
//	  - export.format: must be 'structured' or 'tabular', got "xml"
//	  - schedule.jobs[0].cron: is required
//
// # Hot Reload
//
// Watcher observes the config file (via its containing directory, so
// rename-based atomic saves are caught) and invokes a reload callback
// after a debounce interval. Schedule mode uses it to pick up job changes
// without a restart.
//
// # Example Configuration
//
//	store:
//	  endpoint: "https://content.example.com"
//	  dataset: "production"
//	  token: "${PORTICO_STORE_TOKEN}"
//
//	export:
//	  format: "tabular"
//	  output_dir: "exports"
//
//	schedule:
//	  jobs:
//	    - name: "nightly-posts"
//	      cron: "0 3 * * *"
//	      types: ["post"]
//	      format: "structured"
package config
