// Package metrics provides Prometheus metrics for export operations.
//
// A Collector owns a private registry, so tests and embedders never
// collide with the global default registry. With the default namespace and
// subsystem the exposed families are:
//
//   - portico_export_runs_total{format,outcome}
//   - portico_export_duration_seconds{format}
//   - portico_export_documents_total{format}
//   - portico_export_fetch_duration_seconds
//
// NewCollector returns nil when metrics are disabled; every record method
// and Handler tolerate a nil receiver, so callers need no conditionals.
package metrics
