package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"portico-hq/portico/pkg/config"
)

// TestNew_JSONOutput tests that the default format emits parseable JSON
// with the standard fields.
func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("export complete", "exported", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "export complete" {
		t.Errorf("Unexpected msg: %v", entry["msg"])
	}
	if entry["exported"] != float64(42) {
		t.Errorf("Unexpected exported field: %v", entry["exported"])
	}
}

// TestNew_LevelFiltering tests that entries below the configured level are
// suppressed.
func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected sub-warn entries to be filtered, got: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("Expected warn entry in output, got: %s", out)
	}
}

// TestNew_InvalidLevel tests that unknown levels are rejected.
func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "verbose"}, nil); err == nil {
		t.Error("Expected error for unknown level")
	}
}

// TestNew_InvalidFormat tests that unknown formats are rejected.
func TestNew_InvalidFormat(t *testing.T) {
	if _, err := New(config.LoggingConfig{Format: "xml"}, nil); err == nil {
		t.Error("Expected error for unknown format")
	}
}

// TestComponent tests that child loggers carry the component field.
func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Component("export").Info("starting")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if entry["component"] != "export" {
		t.Errorf("Expected component 'export', got %v", entry["component"])
	}
}

// TestParseLevel tests level string parsing, including case variants and
// the empty default.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"debug", false},
		{"INFO", false},
		{"warning", false},
		{"error", false},
		{"", false},
		{"trace", true},
	}
	for _, tt := range tests {
		_, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
