package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers backup runs on a cron cadence. Jobs are wrapped
// with SkipIfStillRunning: a long tar over a big world must not overlap
// the next trigger, and the skipped trigger's work is done by the next
// one anyway.
type Scheduler struct {
	cron   *cron.Cron
	job    func()
	logger *slog.Logger

	mu      sync.Mutex
	entryID cron.EntryID
	spec    string
	running bool
}

// NewScheduler creates a scheduler invoking job per the standard
// five-field cron spec.
func NewScheduler(spec string, job func()) *Scheduler {
	logger := slog.Default().With("component", "backup.scheduler")
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
		job:    job,
		logger: logger,
		spec:   spec,
	}
}

// Start validates the spec and begins scheduling. The scheduler stops
// itself when ctx is cancelled; Stop waits for a running job to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := cron.ParseStandard(s.spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.spec, err)
	}

	// A previous Start/Stop cycle leaves its entry behind; drop it so
	// the job is never registered twice.
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}

	id, err := s.cron.AddFunc(s.spec, s.job)
	if err != nil {
		return fmt.Errorf("failed to schedule backup runs: %w", err)
	}
	s.entryID = id

	s.cron.Start()
	s.running = true
	s.logger.Info("backup scheduler started", "schedule", s.spec)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Reschedule swaps the cron spec in place, keeping the scheduler
// running. A no-op when the spec is unchanged; an invalid spec leaves
// the current schedule in effect.
func (s *Scheduler) Reschedule(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return fmt.Errorf("scheduler not running")
	}
	if spec == s.spec {
		return nil
	}

	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}

	id, err := s.cron.AddFunc(spec, s.job)
	if err != nil {
		return fmt.Errorf("failed to reschedule backup runs: %w", err)
	}
	s.cron.Remove(s.entryID)

	old := s.spec
	s.entryID = id
	s.spec = spec
	s.logger.Info("backup schedule changed", "from", old, "to", spec)
	return nil
}

// Stop stops scheduling and waits for any running job to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("backup scheduler stopped")
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Next returns the next scheduled run time, or nil when not running.
func (s *Scheduler) Next() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	next := entry.Next
	return &next
}

// cronLogger adapts slog to the cron.Logger interface so skipped
// overlapping triggers show up in the run log.
type cronLogger struct {
	logger *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.logger.Info(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.logger.Error(msg, append(keysAndValues, "error", err)...)
}
