package impl

import (
	"context"
	"log/slog"
	"time"

	"iloveyou/config"
	"iloveyou/internal/domain/constants"
	"iloveyou/internal/domain/entity"
	"iloveyou/internal/domain/repository"
	"iloveyou/internal/errors"
	"iloveyou/internal/usecase"
)

type jobsService struct {
	logger       *slog.Logger
	reminderRepo repository.ReminderRepository
	coupleRepo   repository.CoupleRepository
	dispatcher   usecase.DispatchUsecase
	cfg          *config.SchedulerConfig

	now func() time.Time
}

// NewJobsService creates the periodic pipeline jobs.
func NewJobsService(
	logger *slog.Logger,
	reminderRepo repository.ReminderRepository,
	coupleRepo repository.CoupleRepository,
	dispatcher usecase.DispatchUsecase,
	cfg *config.SchedulerConfig,
) usecase.JobsUsecase {
	return &jobsService{
		logger:       logger,
		reminderRepo: reminderRepo,
		coupleRepo:   coupleRepo,
		dispatcher:   dispatcher,
		cfg:          cfg,
		now:          time.Now,
	}
}

// RunDueReminderCheck sweeps reminders due within the lookahead window,
// dispatches each one and batch-writes bookkeeping for every processed
// reminder. A reminder is marked as attempted even when dispatch fails, so the
// next sweep never picks it up again.
func (s *jobsService) RunDueReminderCheck(ctx context.Context) (*usecase.DueCheckSummary, error) {
	now := s.now()
	dueBefore := now.Add(s.cfg.DueWindow)

	reminders, err := s.reminderRepo.FindDueReminders(ctx, dueBefore, s.cfg.DueBatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "find due reminders")
	}

	summary := &usecase.DueCheckSummary{Processed: len(reminders)}
	results := make([]*entity.NotificationResult, 0, len(reminders))

	for _, reminder := range reminders {
		success, reason := s.dispatchDue(ctx, reminder)
		if success {
			summary.Sent++
		} else {
			summary.Failed++
			s.logger.Warn("reminder dispatch failed",
				slog.String("reminder_id", reminder.ID),
				slog.String("reason", reason),
			)
		}

		results = append(results, &entity.NotificationResult{
			ReminderID: reminder.ID,
			Success:    success,
			SentAt:     now,
			Error:      reason,
		})
	}

	if len(results) > 0 {
		if err := s.reminderRepo.ApplyNotificationResults(ctx, results); err != nil {
			return summary, errors.Wrap(err, "apply notification results")
		}
	}

	s.logger.Info("due reminder check finished",
		slog.Int("processed", summary.Processed),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)

	return summary, nil
}

func (s *jobsService) dispatchDue(ctx context.Context, reminder *entity.Reminder) (bool, string) {
	if reminder.Type == entity.ReminderTypeCouple && reminder.CoupleID != "" {
		result := s.dispatcher.DispatchCoupleReminder(ctx, reminder)

		return result.AnySuccess(), result.FailureReason()
	}

	target := reminder.UserID
	if target == "" {
		target = reminder.CreatorID
	}
	result := s.dispatcher.DispatchReminder(ctx, target, reminder)
	if result.Success {
		return true, ""
	}

	return false, result.Reason
}

// RunCleanup deletes reminders completed longer ago than the retention period.
func (s *jobsService) RunCleanup(ctx context.Context) (int, error) {
	cutoff := s.now().AddDate(0, 0, -s.cfg.CleanupRetentionDays)

	deleted, err := s.reminderRepo.DeleteCompletedBefore(ctx, cutoff, s.cfg.CleanupBatchSize)
	if err != nil {
		return 0, errors.Wrap(err, "delete completed reminders")
	}

	s.logger.Info("cleanup finished",
		slog.Int("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)

	return deleted, nil
}

// RunMilestoneCheck celebrates peaceful-days streaks that sit exactly on a
// milestone value, at most once per couple per calendar day.
func (s *jobsService) RunMilestoneCheck(ctx context.Context) (int, error) {
	couples, err := s.coupleRepo.FindPeacefulDaysCouples(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "find peaceful days couples")
	}

	now := s.now()
	loc, err := time.LoadLocation(s.cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	celebrated := 0
	for _, couple := range couples {
		days := couple.PeacefulDays
		if days == nil || !days.Enabled {
			continue
		}
		if !isMilestone(days.CurrentStreak) {
			continue
		}
		if days.LastMilestoneCelebrated != nil && sameCalendarDay(*days.LastMilestoneCelebrated, now, loc) {
			continue
		}

		results := s.dispatcher.DispatchMilestone(ctx, couple, days.CurrentStreak)
		if !anySuccess(results) {
			s.logger.Warn("milestone dispatch reached no member",
				slog.String("couple_id", couple.ID),
				slog.Int("streak", days.CurrentStreak),
			)

			continue
		}

		if err := s.coupleRepo.StampMilestoneCelebrated(ctx, couple.ID, now); err != nil {
			s.logger.Warn("failed to stamp milestone celebration",
				slog.String("couple_id", couple.ID),
				slog.Any("error", err),
			)
		}
		celebrated++
	}

	s.logger.Info("milestone check finished",
		slog.Int("couples", len(couples)),
		slog.Int("celebrated", celebrated),
	)

	return celebrated, nil
}

func isMilestone(streak int) bool {
	for _, m := range constants.PeacefulDaysMilestones {
		if streak == m {
			return true
		}
	}

	return false
}

func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()

	return ay == by && am == bm && ad == bd
}

func anySuccess(results []*usecase.DispatchResult) bool {
	for _, r := range results {
		if r != nil && r.Success {
			return true
		}
	}

	return false
}
