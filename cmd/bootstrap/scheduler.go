package bootstrap

import (
	"context"
	"log/slog"

	"rentwheels/internal/jobs"
	"rentwheels/internal/pkg/config"
	"rentwheels/internal/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		jobs.NewJobRunner,
		NewScheduler,
	),
	fx.Invoke(runScheduler),
)

func NewScheduler(jobRunner *jobs.JobRunner, cfg config.Config, logger *slog.Logger) *scheduler.Scheduler {
	return scheduler.NewScheduler(jobRunner, cfg.Scheduler, logger)
}

func runScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("Scheduler disabled by configuration")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
