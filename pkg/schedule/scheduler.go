package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"portico-hq/portico/pkg/config"
	"portico-hq/portico/pkg/document"
)

// Runner executes an export request. The orchestrator satisfies it.
type Runner interface {
	Run(ctx context.Context, req *document.ExportRequest) error
}

// Scheduler runs configured export jobs on cron schedules.
//
// Common cron expressions:
//   - "0 3 * * *"    - Daily at 3 AM
//   - "0 */6 * * *"  - Every 6 hours
//   - "0 0 * * 0"    - Weekly on Sunday at midnight
type Scheduler struct {
	runner Runner
	logger *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
	jobs    []config.JobConfig
}

// NewScheduler creates a scheduler driving exports through the runner.
func NewScheduler(runner Runner, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		runner: runner,
		logger: logger.With("component", "schedule"),
	}
}

// Start registers the jobs and begins scheduling. With no jobs the
// scheduler does nothing. The scheduler stops itself when the context is
// cancelled.
func (s *Scheduler) Start(ctx context.Context, jobs []config.JobConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if len(jobs) == 0 {
		s.logger.Info("no export jobs configured, skipping scheduler")
		return nil
	}

	c := cron.New()
	for _, job := range jobs {
		if _, err := cron.ParseStandard(job.Cron); err != nil {
			return fmt.Errorf("invalid cron schedule %q for job %q: %w", job.Cron, job.Name, err)
		}

		job := job
		if _, err := c.AddFunc(job.Cron, func() {
			s.runJob(ctx, job)
		}); err != nil {
			return fmt.Errorf("failed to schedule job %q: %w", job.Name, err)
		}
	}

	c.Start()
	s.cron = c
	s.jobs = jobs
	s.running = true

	s.logger.Info("export scheduler started", "jobs", len(jobs))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runJob executes one scheduled export.
func (s *Scheduler) runJob(ctx context.Context, job config.JobConfig) {
	s.logger.Info("starting scheduled export", "job", job.Name)

	req := RequestFromJob(job)
	if err := s.runner.Run(ctx, req); err != nil {
		s.logger.Error("scheduled export failed", "job", job.Name, "error", err)
		return
	}

	s.logger.Info("scheduled export completed", "job", job.Name)
}

// Stop stops the scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.running = false
		s.cron = nil
		s.logger.Info("export scheduler stopped")
	}
}

// Reload replaces the job set. The scheduler is stopped and restarted with
// the new jobs; a validation failure leaves it stopped.
func (s *Scheduler) Reload(ctx context.Context, jobs []config.JobConfig) error {
	s.Stop()
	return s.Start(ctx, jobs)
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the earliest next execution time across all jobs, or nil
// when nothing is scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	for _, e := range entries[1:] {
		if e.Next.Before(next) {
			next = e.Next
		}
	}
	return &next
}

// Jobs returns the currently scheduled job set.
func (s *Scheduler) Jobs() []config.JobConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs
}

// RequestFromJob translates a configured job into an export request.
func RequestFromJob(job config.JobConfig) *document.ExportRequest {
	return &document.ExportRequest{
		Types:            job.Types,
		CreatedAfter:     job.CreatedAfter,
		RequiredFields:   job.RequiredFields,
		CustomQuery:      job.CustomQuery,
		UseCustomQuery:   job.CustomQuery != "",
		Format:           document.Format(job.Format),
		ExpandReferences: job.ExpandReferences,
		ReferenceDepth:   job.ReferenceDepth,
		MaxDocuments:     job.MaxDocuments,
		OutputName:       job.OutputName,
	}
}
