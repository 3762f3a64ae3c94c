package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"coldrent-backend/internal/jobs"
	"coldrent-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.MarkExpiredRentals, s.jobs.MarkExpiredRentals); err != nil {
		logger.Error("Failed to register MarkExpiredRentals job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.SendExpiryReminders, s.jobs.SendExpiryReminders); err != nil {
		logger.Error("Failed to register SendExpiryReminders job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.SendMaintenanceDue, s.jobs.SendMaintenanceDueReminders); err != nil {
		logger.Error("Failed to register SendMaintenanceDueReminders job", "error", err)
	}
}

// Start begins executing scheduled jobs
func (s *Scheduler) Start() {
	logger.Info("Starting job scheduler")
	s.cron.Start()
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	logger.Info("Stopping job scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}
