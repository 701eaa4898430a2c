package scheduler

import (
	"log/slog"
	"time"

	"rentwheels/internal/jobs"
	"rentwheels/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron   *cron.Cron
	jobs   *jobs.JobRunner
	logger *slog.Logger
}

func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig, logger *slog.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
	)

	s := &Scheduler{
		cron:   c,
		jobs:   jobRunner,
		logger: logger,
	}

	s.registerJobs(cfg)
	return s
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) {
	if _, err := s.cron.AddFunc(cfg.LateFeeRefresh, s.jobs.RefreshLateFees); err != nil {
		s.logger.Error("Failed to register RefreshLateFees job", "error", err)
	}

	if _, err := s.cron.AddFunc(cfg.WaitlistCheck, s.jobs.SweepWaitlist); err != nil {
		s.logger.Error("Failed to register SweepWaitlist job", "error", err)
	}

	s.logger.Info("All cron jobs registered")
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler")
	s.cron.Start()
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
