// Package document defines the core data model for Portico: documents,
// export requests and results, progress state, and the injected capability
// contracts (Fetcher, TypeLister, Emitter) the export pipeline is built on.
//
// # Documents
//
// A Document is an order-preserving snapshot of a single store record.
// Top-level field values are kept as raw JSON, so nested structures survive
// export verbatim, and field order is retained because tabular headers
// follow first-seen order:
//
//	var doc document.Document
//	if err := json.Unmarshal(data, &doc); err != nil { ... }
//	for _, name := range doc.Names() {
//	    raw, _ := doc.Get(name)
//	    ...
//	}
//
// # Capabilities
//
// The export orchestrator never talks to the store or the filesystem
// directly. It is handed a Fetcher (query string to document list), an
// Emitter (content, name, content type to persistence), and optionally a
// TypeLister for enumerating document types. Any environment substitutes
// its own implementations behind these contracts.
//
// # Errors
//
// Each pipeline stage has a typed error (QueryError, FetchError,
// ConvertError, EmitError) that wraps its cause and supports errors.Is and
// errors.As. The sentinels ErrExportInProgress and ErrNothingSelected guard
// run entry; ErrNothingSelected is deliberately a lower-severity condition
// that never reaches the orchestrator's error callback.
package document
