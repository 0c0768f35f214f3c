// Package scheduler implements the periodic-job delivery running the
// due-reminder sweep, cleanup and milestone checks.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"iloveyou/config"
	"iloveyou/internal/delivery"
	"iloveyou/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type schedulerServer struct {
	cfg       *config.SchedulerConfig
	logger    *slog.Logger
	jobs      usecase.JobsUsecase
	scheduler gocron.Scheduler
}

// ServerParams holds dependencies for the scheduler server
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Jobs   usecase.JobsUsecase
}

// NewServer creates the scheduler delivery and registers the pipeline jobs.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Scheduler

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load scheduler timezone %q", cfg.Timezone)
	}

	sched, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, errors.Wrap(err, "create scheduler")
	}

	srv := &schedulerServer{
		cfg:       cfg,
		logger:    params.Logger,
		jobs:      params.Jobs,
		scheduler: sched,
	}

	if err := srv.registerJobs(); err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *schedulerServer) registerJobs() error {
	if _, err := s.scheduler.NewJob(
		gocron.DurationJob(s.cfg.DueCheckInterval),
		gocron.NewTask(s.runDueCheck),
	); err != nil {
		return errors.Wrap(err, "register due-reminder job")
	}

	if _, err := s.scheduler.NewJob(
		gocron.CronJob(s.cfg.CleanupCron, false),
		gocron.NewTask(s.runCleanup),
	); err != nil {
		return errors.Wrap(err, "register cleanup job")
	}

	if _, err := s.scheduler.NewJob(
		gocron.CronJob(s.cfg.MilestoneCron, false),
		gocron.NewTask(s.runMilestoneCheck),
	); err != nil {
		return errors.Wrap(err, "register milestone job")
	}

	return nil
}

func (s *schedulerServer) runDueCheck(ctx context.Context) {
	summary, err := s.jobs.RunDueReminderCheck(ctx)
	if err != nil {
		s.logger.Error("[Scheduler] Due-reminder check failed", slog.Any("error", err))

		return
	}

	if summary.Processed > 0 {
		s.logger.Info("[Scheduler] Due-reminder check finished",
			slog.Int("processed", summary.Processed),
			slog.Int("sent", summary.Sent),
			slog.Int("failed", summary.Failed),
		)
	}
}

func (s *schedulerServer) runCleanup(ctx context.Context) {
	deleted, err := s.jobs.RunCleanup(ctx)
	if err != nil {
		s.logger.Error("[Scheduler] Cleanup failed", slog.Any("error", err))

		return
	}

	s.logger.Info("[Scheduler] Cleanup finished", slog.Int("deleted", deleted))
}

func (s *schedulerServer) runMilestoneCheck(ctx context.Context) {
	celebrated, err := s.jobs.RunMilestoneCheck(ctx)
	if err != nil {
		s.logger.Error("[Scheduler] Milestone check failed", slog.Any("error", err))

		return
	}

	s.logger.Info("[Scheduler] Milestone check finished", slog.Int("celebrated", celebrated))
}

// Serve starts the scheduler and blocks until the context is canceled.
func (s *schedulerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting scheduler",
		slog.Duration("dueCheckInterval", s.cfg.DueCheckInterval),
		slog.String("cleanupCron", s.cfg.CleanupCron),
		slog.String("milestoneCron", s.cfg.MilestoneCron),
		slog.String("timezone", s.cfg.Timezone),
	)
	s.scheduler.Start()

	<-ctx.Done()

	return nil
}

// stop shuts down the scheduler, waiting for running jobs to finish.
func (s *schedulerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler")

	return errors.WithStack(s.scheduler.Shutdown())
}
