package export

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"portico-hq/portico/pkg/document"
	"portico-hq/portico/pkg/export/format"
	"portico-hq/portico/pkg/export/query"
	"portico-hq/portico/pkg/history"
	"portico-hq/portico/pkg/telemetry/metrics"
)

// Callbacks are the completion notifications an export run delivers.
// Either field may be nil. Callbacks run synchronously on the Run
// goroutine, before Run returns.
type Callbacks struct {
	// OnComplete fires exactly once per successful run, including runs
	// that matched zero documents.
	OnComplete func(document.ExportResult)

	// OnError fires for runtime failures (fetch, convert, emit). It does
	// not fire for the nothing-selected precondition or for cancellation.
	OnError func(error)
}

// Orchestrator coordinates export runs through the fetch, convert, and emit
// capabilities. A single orchestrator runs at most one export at a time;
// concurrent Run calls beyond the first fail fast with ErrExportInProgress.
type Orchestrator struct {
	fetcher document.Fetcher
	emitter document.Emitter

	callbacks  Callbacks
	logger     *slog.Logger
	metrics    *metrics.Collector
	recorder   history.Recorder
	resetDelay time.Duration
	now        func() time.Time

	mu       sync.Mutex
	running  bool
	progress document.Progress
	resetTmr *time.Timer
}

// DefaultResetDelay is how long a terminal phase (complete or error) stays
// observable before the orchestrator returns to idle.
const DefaultResetDelay = 3 * time.Second

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCallbacks sets the completion and error callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(o *Orchestrator) { o.callbacks = cb }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger.With("component", "export")
		}
	}
}

// WithMetrics sets the metrics collector. A nil collector disables metrics.
func WithMetrics(collector *metrics.Collector) Option {
	return func(o *Orchestrator) { o.metrics = collector }
}

// WithRecorder sets the run-history recorder. A nil recorder disables
// history.
func WithRecorder(recorder history.Recorder) Option {
	return func(o *Orchestrator) { o.recorder = recorder }
}

// WithResetDelay sets how long terminal phases stay observable before the
// orchestrator resets to idle. Non-positive disables the automatic reset.
func WithResetDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.resetDelay = d }
}

// WithClock overrides the time source. Used by tests and for deterministic
// filenames.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// New creates an orchestrator over the given fetch and emit capabilities.
func New(fetcher document.Fetcher, emitter document.Emitter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher:    fetcher,
		emitter:    emitter,
		logger:     slog.Default().With("component", "export"),
		resetDelay: DefaultResetDelay,
		now:        time.Now,
		progress:   document.Progress{Phase: document.PhaseIdle},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Progress returns a snapshot of the current run state.
func (o *Orchestrator) Progress() document.Progress {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.progress
}

// Run executes a single export. It validates the request, builds the store
// query, fetches matching documents, converts them to the requested format,
// and emits the result.
//
// Run is synchronous: callbacks fire and history is recorded before it
// returns. The returned error mirrors what the error callback saw, plus the
// cases that never reach callbacks (busy, nothing selected, cancellation).
func (o *Orchestrator) Run(ctx context.Context, req *document.ExportRequest) error {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return document.ErrExportInProgress
	}
	o.running = true
	if o.resetTmr != nil {
		o.resetTmr.Stop()
		o.resetTmr = nil
	}
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	// Precondition, not a failure: surfaced as a status message only,
	// never through the error callback.
	if !req.UseCustomQuery && len(req.Types) == 0 {
		o.setProgress(document.PhaseIdle, 0, "Select at least one document type or enable a custom query")
		return document.ErrNothingSelected
	}

	resolved := *req
	query.ApplyDefaults(&resolved)
	if err := query.Validate(&resolved); err != nil {
		return o.fail(ctx, history.Run{}, err)
	}

	started := o.now()
	run := history.Run{
		ID:        uuid.New().String(),
		StartedAt: started,
		Format:    string(resolved.Format),
	}

	if err := o.checkCancelled(ctx); err != nil {
		return err
	}
	o.setProgress(document.PhasePreparing, 0, "Preparing export")
	q := query.Build(&resolved)
	run.Query = q
	o.logger.Debug("query built", "run_id", run.ID, "query", q)

	if err := o.checkCancelled(ctx); err != nil {
		return err
	}
	o.setProgress(document.PhaseFetching, 25, "Fetching documents")
	fetchStart := o.now()
	docs, err := o.fetcher.Fetch(ctx, q)
	o.metrics.RecordFetch(o.now().Sub(fetchStart))
	if err != nil {
		return o.fail(ctx, run, err)
	}
	o.setProgress(document.PhaseFetching, 50, fmt.Sprintf("Fetched %d documents", len(docs)))

	if len(docs) == 0 {
		result := document.ExportResult{Exported: 0, Format: resolved.Format}
		return o.complete(ctx, run, result)
	}

	if err := o.checkCancelled(ctx); err != nil {
		return err
	}
	o.setProgress(document.PhaseProcessing, 75, fmt.Sprintf("Converting %d documents", len(docs)))
	conv, err := format.ForFormat(resolved.Format)
	if err != nil {
		return o.fail(ctx, run, err)
	}
	content, err := conv.Convert(docs)
	if err != nil {
		return o.fail(ctx, run, document.NewConvertError(resolved.Format, len(docs), err))
	}

	if err := o.checkCancelled(ctx); err != nil {
		return err
	}
	filename := resolveFilename(&resolved, o.now())
	run.Filename = filename
	o.setProgress(document.PhaseDownloading, 90, fmt.Sprintf("Writing %s", filename))
	if err := o.emitter.Emit(content, filename, resolved.Format.ContentType()); err != nil {
		return o.fail(ctx, run, document.NewEmitError(filename, err))
	}

	result := document.ExportResult{
		Exported: len(docs),
		Format:   resolved.Format,
		Filename: filename,
	}
	return o.complete(ctx, run, result)
}

// complete finishes a successful run: terminal progress, history, metrics,
// completion callback, and the deferred reset to idle.
func (o *Orchestrator) complete(ctx context.Context, run history.Run, result document.ExportResult) error {
	msg := fmt.Sprintf("Exported %d documents", result.Exported)
	if result.Exported == 0 {
		msg = "No documents matched"
	}
	o.setProgress(document.PhaseComplete, 100, msg)

	run.FinishedAt = o.now()
	run.Exported = result.Exported
	run.Status = history.StatusComplete
	o.record(ctx, &run)

	o.metrics.RecordExport(string(result.Format), metrics.OutcomeSuccess, result.Exported, run.FinishedAt.Sub(run.StartedAt))
	o.logger.Info("export complete",
		"run_id", run.ID,
		"exported", result.Exported,
		"format", result.Format,
		"filename", result.Filename)

	if o.callbacks.OnComplete != nil {
		o.callbacks.OnComplete(result)
	}

	o.scheduleReset()
	return nil
}

// fail finishes a failed run: error phase, history, metrics, error
// callback, and the deferred reset to idle.
func (o *Orchestrator) fail(ctx context.Context, run history.Run, err error) error {
	o.setProgress(document.PhaseError, 0, err.Error())

	if run.ID != "" {
		run.FinishedAt = o.now()
		run.Status = history.StatusError
		run.Error = err.Error()
		o.record(ctx, &run)
	}

	o.metrics.RecordExport(run.Format, metrics.OutcomeError, 0, run.FinishedAt.Sub(run.StartedAt))
	o.logger.Error("export failed", "run_id", run.ID, "error", err)

	if o.callbacks.OnError != nil {
		o.callbacks.OnError(err)
	}

	o.scheduleReset()
	return err
}

// checkCancelled observes context cancellation at a phase boundary. A
// cancelled run returns to idle without callbacks or history.
func (o *Orchestrator) checkCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		o.setProgress(document.PhaseIdle, 0, "Export cancelled")
		o.logger.Info("export cancelled")
		return err
	}
	return nil
}

// record persists the run, logging failures without affecting the export
// outcome.
func (o *Orchestrator) record(ctx context.Context, run *history.Run) {
	if o.recorder == nil {
		return
	}
	if err := o.recorder.Record(ctx, run); err != nil {
		o.logger.Warn("failed to record export run", "run_id", run.ID, "error", err)
	}
}

func (o *Orchestrator) setProgress(phase document.Phase, percent int, message string) {
	o.mu.Lock()
	o.progress = document.Progress{Phase: phase, Percent: percent, Message: message}
	o.mu.Unlock()
}

// scheduleReset arms the return to idle after a terminal phase. A new run
// starting first cancels the pending reset.
func (o *Orchestrator) scheduleReset() {
	if o.resetDelay <= 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.resetTmr != nil {
		o.resetTmr.Stop()
	}
	o.resetTmr = time.AfterFunc(o.resetDelay, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.running {
			return
		}
		o.progress = document.Progress{Phase: document.PhaseIdle}
	})
}
