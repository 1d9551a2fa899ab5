package jobs

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentdesk-backoffice/internal/config"
	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/repository/postgres"
	"rentdesk-backoffice/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	services *Services
	config   *config.Config
	now      func() time.Time
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email         service.EmailService
	Registrations service.VehicleRegistrationService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		services: services,
		config:   cfg,
		now:      time.Now,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

func (jr *JobRunner) today() domain.Date {
	return domain.DateOf(jr.now().UTC())
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	start := time.Now()
	if err := jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
}

// companyMailbox returns the company email notices go to, or "" when none is configured
func (jr *JobRunner) companyMailbox(ctx context.Context) (string, error) {
	company, err := jr.store.CompanyRepository.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return company.Email, nil
}

// RunAll runs every maintenance job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.MarkOverdueContracts()
	jr.SendRegistrationExpiryReminders()
}
