package document

import (
	"errors"
	"fmt"
)

// ErrExportInProgress is returned when an export run is started while
// another run is still active.
var ErrExportInProgress = errors.New("export already in progress")

// ErrNothingSelected is returned when a run is started with no document
// types selected and the custom query disabled. It is a guarded
// precondition, not a runtime failure: the orchestrator reports it only as
// a local status message and never through the error callback.
var ErrNothingSelected = errors.New("no document types selected and custom query disabled")

// QueryError represents an invalid export request.
type QueryError struct {
	Cause error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("query error: %v", e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// NewQueryError creates a new QueryError.
func NewQueryError(cause error) *QueryError {
	return &QueryError{Cause: cause}
}

// FetchError represents a failure of the fetch capability.
type FetchError struct {
	Query      string // Query that failed
	StatusCode int    // HTTP status, 0 if the request never completed
	Cause      error  // Underlying error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch error [status=%d]: %v", e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("fetch error: %v", e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewFetchError creates a new FetchError.
func NewFetchError(query string, statusCode int, cause error) *FetchError {
	return &FetchError{
		Query:      query,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// ConvertError represents a failure during format conversion.
type ConvertError struct {
	Format      Format // Target format
	RecordCount int    // Number of documents being converted
	Cause       error  // Underlying error
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert error [format=%s, record_count=%d]: %v", e.Format, e.RecordCount, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// NewConvertError creates a new ConvertError.
func NewConvertError(format Format, recordCount int, cause error) *ConvertError {
	return &ConvertError{
		Format:      format,
		RecordCount: recordCount,
		Cause:       cause,
	}
}

// EmitError represents a failure of the emit capability.
type EmitError struct {
	Filename string // Output name being written
	Cause    error  // Underlying error
}

// Error implements the error interface.
func (e *EmitError) Error() string {
	return fmt.Sprintf("emit error [filename=%s]: %v", e.Filename, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *EmitError) Unwrap() error {
	return e.Cause
}

// NewEmitError creates a new EmitError.
func NewEmitError(filename string, cause error) *EmitError {
	return &EmitError{
		Filename: filename,
		Cause:    cause,
	}
}
