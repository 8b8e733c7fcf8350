package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portico-hq/portico/pkg/config"
)

func testConfig() config.MetricsConfig {
	return config.MetricsConfig{
		Enabled:   true,
		Namespace: "portico",
		Subsystem: "export",
	}
}

// TestNewCollector_Disabled tests that a disabled config yields a nil
// collector whose methods are safe to call.
func TestNewCollector_Disabled(t *testing.T) {
	c := NewCollector(config.MetricsConfig{Enabled: false})
	if c != nil {
		t.Fatal("Expected nil collector when disabled")
	}

	// None of these should panic on the nil receiver.
	c.RecordExport("structured", OutcomeSuccess, 10, time.Second)
	c.RecordFetch(time.Millisecond)
	if c.Registry() != nil {
		t.Error("Expected nil registry when disabled")
	}

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Errorf("Expected 404 from disabled handler, got %d", rec.Code)
	}
}

// TestRecordExport tests that export runs appear in the exposition output
// with the expected names and labels.
func TestRecordExport(t *testing.T) {
	c := NewCollector(testConfig())

	c.RecordExport("structured", OutcomeSuccess, 42, 2*time.Second)
	c.RecordExport("tabular", OutcomeError, 0, 100*time.Millisecond)
	c.RecordFetch(50 * time.Millisecond)

	body := scrape(t, c)

	for _, want := range []string{
		`portico_export_runs_total{format="structured",outcome="success"} 1`,
		`portico_export_runs_total{format="tabular",outcome="error"} 1`,
		`portico_export_documents_total{format="structured"} 42`,
		"portico_export_duration_seconds_bucket",
		"portico_export_fetch_duration_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in metrics output", want)
		}
	}

	// A failed run with zero documents must not create a documents series.
	if strings.Contains(body, `portico_export_documents_total{format="tabular"}`) {
		t.Error("Unexpected documents series for zero-document run")
	}
}

// TestCollector_PrivateRegistry tests that two collectors do not share
// state.
func TestCollector_PrivateRegistry(t *testing.T) {
	a := NewCollector(testConfig())
	b := NewCollector(testConfig())

	a.RecordExport("structured", OutcomeSuccess, 1, time.Second)

	if strings.Contains(scrape(t, b), "portico_export_runs_total{") {
		t.Error("Second collector observed the first collector's samples")
	}
}

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("Metrics endpoint returned %d", rec.Code)
	}
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics body: %v", err)
	}
	return string(body)
}
