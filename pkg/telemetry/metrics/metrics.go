package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"portico-hq/portico/pkg/config"
)

// Collector holds the Prometheus metrics for export operations. All record
// methods are nil-safe so callers can hold a nil *Collector when metrics
// are disabled.
type Collector struct {
	registry *prometheus.Registry

	exportsTotal      *prometheus.CounterVec
	exportDuration    *prometheus.HistogramVec
	documentsExported *prometheus.CounterVec
	fetchDuration     prometheus.Histogram
}

// Outcome labels for the exports_total counter.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// NewCollector creates a Collector with all metrics registered on a private
// registry. Returns nil when metrics are disabled, which record methods
// tolerate.
func NewCollector(cfg config.MetricsConfig) *Collector {
	if !cfg.Enabled {
		return nil
	}

	buckets := cfg.DurationBuckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,

		exportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of export runs by format and outcome.",
			},
			[]string{"format", "outcome"},
		),

		exportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "duration_seconds",
				Help:      "End-to-end export run duration in seconds.",
				Buckets:   buckets,
			},
			[]string{"format"},
		),

		documentsExported: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "documents_total",
				Help:      "Total number of documents exported by format.",
			},
			[]string{"format"},
		),

		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "fetch_duration_seconds",
				Help:      "Document store fetch duration in seconds.",
				Buckets:   buckets,
			},
		),
	}

	registry.MustRegister(
		c.exportsTotal,
		c.exportDuration,
		c.documentsExported,
		c.fetchDuration,
	)

	return c
}

// RecordExport records a completed export run.
func (c *Collector) RecordExport(format string, outcome string, exported int, duration time.Duration) {
	if c == nil {
		return
	}
	c.exportsTotal.WithLabelValues(format, outcome).Inc()
	c.exportDuration.WithLabelValues(format).Observe(duration.Seconds())
	if exported > 0 {
		c.documentsExported.WithLabelValues(format).Add(float64(exported))
	}
}

// RecordFetch records the duration of a document store fetch.
func (c *Collector) RecordFetch(duration time.Duration) {
	if c == nil {
		return
	}
	c.fetchDuration.Observe(duration.Seconds())
}

// Registry returns the private registry, or nil when metrics are disabled.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}
