package query

import (
	"fmt"

	"portico-hq/portico/pkg/document"
)

const (
	// DefaultMaxDocuments is the document bound applied when a request
	// does not specify one.
	DefaultMaxDocuments = 1000

	// MaxMaxDocuments is the largest document bound a single export may
	// request.
	MaxMaxDocuments = 100000

	// MaxReferenceDepth is the largest reference expansion depth accepted
	// from a request. The expander itself is unbounded; this is the
	// caller-side cap.
	MaxReferenceDepth = 5
)

// Validate checks an export request and returns a QueryError if any
// parameter is invalid.
func Validate(req *document.ExportRequest) error {
	if req.MaxDocuments <= 0 {
		return document.NewQueryError(fmt.Errorf("max documents must be > 0, got %d", req.MaxDocuments))
	}
	if req.MaxDocuments > MaxMaxDocuments {
		return document.NewQueryError(fmt.Errorf("max documents must be <= %d, got %d", MaxMaxDocuments, req.MaxDocuments))
	}
	if req.ReferenceDepth < 0 {
		return document.NewQueryError(fmt.Errorf("reference depth must be >= 0, got %d", req.ReferenceDepth))
	}
	if req.ReferenceDepth > MaxReferenceDepth {
		return document.NewQueryError(fmt.Errorf("reference depth must be <= %d, got %d", MaxReferenceDepth, req.ReferenceDepth))
	}
	if !req.Format.Valid() {
		return document.NewQueryError(fmt.Errorf("unknown format: %q", req.Format))
	}
	return nil
}

// ApplyDefaults fills in default values for unset request fields.
func ApplyDefaults(req *document.ExportRequest) {
	if req.MaxDocuments == 0 {
		req.MaxDocuments = DefaultMaxDocuments
	}
	if req.Format == "" {
		req.Format = document.FormatStructured
	}
}
