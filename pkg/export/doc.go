// Package export coordinates document export runs.
//
// An Orchestrator drives each run through a fixed sequence of phases:
//
//	idle -> preparing -> fetching -> processing -> downloading -> complete
//
// with any phase able to transition to error. Observers poll Progress for
// phase, percent, and message snapshots; completion and failure are also
// delivered through optional callbacks. After a terminal phase the
// orchestrator returns to idle on a configurable delay.
//
// One run at a time: starting a run while another is active fails with
// document.ErrExportInProgress. Starting a run with nothing selected (no
// types, custom query disabled) fails with document.ErrNothingSelected,
// reported as a status message rather than through the error callback.
//
// Query construction and validation live in the query subpackage; format
// serialization lives in the format subpackage.
package export
