package document

import "context"

// Format identifies an export output format.
type Format string

const (
	// FormatStructured is a pretty-printed JSON array preserving the full
	// nested structure of each document.
	FormatStructured Format = "structured"

	// FormatTabular is a delimited plain-text format with one header row
	// and one row per document.
	FormatTabular Format = "tabular"
)

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatTabular {
		return "csv"
	}
	return "json"
}

// ContentType returns the MIME content type for the format.
func (f Format) ContentType() string {
	if f == FormatTabular {
		return "text/csv"
	}
	return "application/json"
}

// Valid reports whether the format is one of the known formats.
func (f Format) Valid() bool {
	return f == FormatStructured || f == FormatTabular
}

// ExportRequest describes a single export run. It is immutable once passed
// to the orchestrator.
type ExportRequest struct {
	// Types is the set of document type tags to export. May be empty when
	// a custom query is used.
	Types []string

	// CreatedAfter is an optional lower bound on document creation dates
	// (ISO date, e.g. "2023-01-01"). Empty disables the filter.
	CreatedAfter string

	// RequiredFields is a comma-separated list of field names; documents
	// matching any of them (field defined) are included. Empty disables
	// the filter.
	RequiredFields string

	// CustomQuery is a user-supplied query used verbatim when
	// UseCustomQuery is set, overriding every other filter parameter.
	CustomQuery string

	// UseCustomQuery enables the custom query override.
	UseCustomQuery bool

	// Format is the target output format.
	Format Format

	// ExpandReferences includes documents referencing each exported
	// document, up to ReferenceDepth levels.
	ExpandReferences bool

	// ReferenceDepth is the reference expansion depth. Must be >= 0.
	ReferenceDepth int

	// MaxDocuments strictly bounds the number of documents requested.
	// Must be > 0.
	MaxDocuments int

	// OutputName is an optional explicit output name (without extension).
	// When blank a name is generated from the type tags and current date.
	OutputName string
}

// ExportResult is produced once per successful run, including runs that
// matched zero documents.
type ExportResult struct {
	// Exported is the number of documents written.
	Exported int

	// Format is the resolved output format.
	Format Format

	// Filename is the resolved output name. Empty for zero-document runs,
	// which skip emission.
	Filename string
}

// Phase identifies a stage of the export state machine.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhasePreparing   Phase = "preparing"
	PhaseFetching    Phase = "fetching"
	PhaseProcessing  Phase = "processing"
	PhaseDownloading Phase = "downloading"
	PhaseComplete    Phase = "complete"
	PhaseError       Phase = "error"
)

// Progress is the externally observable state of an export run. It is
// mutated only by the orchestrator; observers read snapshots.
type Progress struct {
	// Phase is the current state machine phase.
	Phase Phase

	// Percent is the completion percentage (0-100).
	Percent int

	// Message is a human-readable status message.
	Message string
}

// Fetcher executes a store query and returns the matching documents.
// Implementations may fail; the orchestrator surfaces failures through its
// error callback.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]*Document, error)
}

// TypeLister enumerates the distinct document type tags present in the
// store.
type TypeLister interface {
	Types(ctx context.Context) ([]string, error)
}

// Emitter persists exported content under the given name. The content type
// is advisory; file-backed emitters may ignore it.
type Emitter interface {
	Emit(content, filename, contentType string) error
}
