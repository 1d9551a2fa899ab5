package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"rentdesk-backoffice/internal/jobs"
	"rentdesk-backoffice/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron  *cron.Cron
	names map[cron.EntryID]string
}

// NewScheduler creates an empty scheduler running in UTC with seconds precision
func NewScheduler() *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)
	return &Scheduler{
		cron:  c,
		names: make(map[cron.EntryID]string),
	}
}

// Register adds a named job on a six-field cron spec
func (s *Scheduler) Register(name, spec string, fn func()) error {
	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return fmt.Errorf("failed to register %s job: %w", name, err)
	}
	s.names[id] = name
	logger.Debug("Registered cron job", "job", name, "spec", spec)
	return nil
}

// RegisterJobs registers the maintenance jobs of the runner on their configured schedules
func (s *Scheduler) RegisterJobs(jr *jobs.JobRunner) error {
	cfg := jr.Config().Scheduler

	if err := s.Register("MarkOverdueContracts", cfg.MarkOverdueContracts, jr.MarkOverdueContracts); err != nil {
		return err
	}
	if err := s.Register("SendRegistrationExpiryReminders", cfg.SendRegistrationReminders, jr.SendRegistrationExpiryReminders); err != nil {
		return err
	}

	logger.Info("All cron jobs registered successfully", "count", len(s.names))
	return nil
}

// Jobs lists the registered job names with their next run time
func (s *Scheduler) Jobs() map[string]time.Time {
	out := make(map[string]time.Time, len(s.names))
	for _, e := range s.cron.Entries() {
		out[s.names[e.ID]] = e.Next
	}
	return out
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler has jobs registered
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
