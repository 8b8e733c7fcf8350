package history

import (
	"context"
	"time"
)

// Run statuses.
const (
	StatusComplete = "complete"
	StatusError    = "error"
)

// Run is the persisted record of a single export run, successful or not.
type Run struct {
	// ID is a UUID v4 assigned by the orchestrator.
	ID string `json:"id"`

	// StartedAt is when the run entered the preparing phase.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run reached complete or error.
	FinishedAt time.Time `json:"finished_at"`

	// Query is the store query the run executed.
	Query string `json:"query"`

	// Format is the resolved output format.
	Format string `json:"format"`

	// Filename is the resolved output name. Empty for zero-document runs.
	Filename string `json:"filename"`

	// Exported is the number of documents written.
	Exported int `json:"exported"`

	// Status is "complete" or "error".
	Status string `json:"status"`

	// Error is the failure message for error runs, empty otherwise.
	Error string `json:"error"`
}

// Recorder is the narrow write-side interface the orchestrator records runs
// through.
type Recorder interface {
	// Record persists a finished run.
	Record(ctx context.Context, run *Run) error
}

// Store is a full run-history backend. Implementations must be safe for
// concurrent use.
type Store interface {
	Recorder

	// Recent returns up to limit runs, most recent first.
	Recent(ctx context.Context, limit int) ([]*Run, error)

	// Count returns the total number of recorded runs.
	Count(ctx context.Context) (int64, error)

	// Prune deletes runs older than the retention period and returns the
	// number deleted.
	Prune(ctx context.Context, retentionDays int) (int64, error)

	// Close releases any resources held by the backend.
	Close() error
}
