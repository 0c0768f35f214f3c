package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"iloveyou/config"
	"iloveyou/internal/domain/entity"
	mockRepo "iloveyou/internal/mocks/repository"
	mockUC "iloveyou/internal/mocks/usecase"
	"iloveyou/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestJobsService(t *testing.T) (
	*jobsService,
	*mockRepo.MockReminderRepository,
	*mockRepo.MockCoupleRepository,
	*mockUC.MockDispatchUsecase,
) {
	reminderRepo := mockRepo.NewMockReminderRepository(t)
	coupleRepo := mockRepo.NewMockCoupleRepository(t)
	dispatcher := mockUC.NewMockDispatchUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	jobs := NewJobsService(
		logger,
		reminderRepo,
		coupleRepo,
		dispatcher,
		&config.SchedulerConfig{
			DueCheckInterval:     time.Minute,
			DueWindow:            5 * time.Minute,
			DueBatchSize:         200,
			CleanupRetentionDays: 30,
			CleanupBatchSize:     100,
			Timezone:             "Asia/Ho_Chi_Minh",
		},
	).(*jobsService)

	return jobs, reminderRepo, coupleRepo, dispatcher
}

func TestJobsService_RunDueReminderCheck_MixedOutcomes(t *testing.T) {
	jobs, reminderRepo, _, dispatcher := createTestJobsService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return now }

	personal := &entity.Reminder{ID: "rem-1", Type: entity.ReminderTypePersonal, UserID: "user-1"}
	couple := &entity.Reminder{ID: "rem-2", Type: entity.ReminderTypeCouple, CoupleID: "couple-1", CreatorID: "user-1"}
	failing := &entity.Reminder{ID: "rem-3", Type: entity.ReminderTypePersonal, UserID: "user-3"}

	reminderRepo.EXPECT().
		FindDueReminders(ctx, now.Add(5*time.Minute), 200).
		Return([]*entity.Reminder{personal, couple, failing}, nil)

	dispatcher.EXPECT().DispatchReminder(ctx, "user-1", personal).Return(usecase.Sent("msg-1"))
	dispatcher.EXPECT().DispatchCoupleReminder(ctx, couple).Return(&usecase.CoupleDispatchResult{
		Partner: usecase.Sent("msg-2"),
		Creator: usecase.Skipped(usecase.KindPrecondition, "No token"),
	})
	dispatcher.EXPECT().DispatchReminder(ctx, "user-3", failing).
		Return(usecase.Skipped(usecase.KindNotFound, "User not found"))

	reminderRepo.EXPECT().
		ApplyNotificationResults(ctx, mock.MatchedBy(func(results []*entity.NotificationResult) bool {
			if len(results) != 3 {
				return false
			}

			return results[0].Success && results[0].Error == "" &&
				results[1].Success &&
				!results[2].Success && results[2].Error == "User not found"
		})).
		Return(nil)

	summary, err := jobs.RunDueReminderCheck(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
}

func TestJobsService_RunDueReminderCheck_EmptyBatch(t *testing.T) {
	jobs, reminderRepo, _, _ := createTestJobsService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().
		FindDueReminders(ctx, mock.Anything, 200).
		Return([]*entity.Reminder{}, nil)

	summary, err := jobs.RunDueReminderCheck(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
}

func TestJobsService_RunDueReminderCheck_QueryError(t *testing.T) {
	jobs, reminderRepo, _, _ := createTestJobsService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().
		FindDueReminders(ctx, mock.Anything, 200).
		Return(nil, errors.New("firestore unavailable"))

	summary, err := jobs.RunDueReminderCheck(ctx)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "find due reminders")
}

func TestJobsService_RunDueReminderCheck_PersonalFallsBackToCreator(t *testing.T) {
	jobs, reminderRepo, _, dispatcher := createTestJobsService(t)
	ctx := context.Background()

	// Legacy documents carry only creatorId.
	legacy := &entity.Reminder{ID: "rem-1", Type: entity.ReminderTypePersonal, CreatorID: "user-9"}

	reminderRepo.EXPECT().
		FindDueReminders(ctx, mock.Anything, 200).
		Return([]*entity.Reminder{legacy}, nil)

	dispatcher.EXPECT().DispatchReminder(ctx, "user-9", legacy).Return(usecase.Sent("msg-1"))

	reminderRepo.EXPECT().ApplyNotificationResults(ctx, mock.Anything).Return(nil)

	summary, err := jobs.RunDueReminderCheck(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
}

func TestJobsService_RunCleanup(t *testing.T) {
	jobs, reminderRepo, _, _ := createTestJobsService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return now }

	reminderRepo.EXPECT().
		DeleteCompletedBefore(ctx, now.AddDate(0, 0, -30), 100).
		Return(42, nil)

	deleted, err := jobs.RunCleanup(ctx)

	require.NoError(t, err)
	assert.Equal(t, 42, deleted)
}

func TestJobsService_RunCleanup_Error(t *testing.T) {
	jobs, reminderRepo, _, _ := createTestJobsService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().
		DeleteCompletedBefore(ctx, mock.Anything, 100).
		Return(0, errors.New("batch write failed"))

	deleted, err := jobs.RunCleanup(ctx)

	assert.Error(t, err)
	assert.Zero(t, deleted)
}

func TestJobsService_RunMilestoneCheck_CelebratesOncePerDay(t *testing.T) {
	jobs, _, coupleRepo, dispatcher := createTestJobsService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return now }

	alreadyCelebrated := now.Add(-2 * time.Hour)
	couples := []*entity.Couple{
		{
			ID:      "couple-1",
			Members: []string{"a", "b"},
			PeacefulDays: &entity.PeacefulDays{
				Enabled:       true,
				CurrentStreak: 100,
			},
		},
		{
			// Same milestone already celebrated today: skipped.
			ID:      "couple-2",
			Members: []string{"c", "d"},
			PeacefulDays: &entity.PeacefulDays{
				Enabled:                 true,
				CurrentStreak:           30,
				LastMilestoneCelebrated: &alreadyCelebrated,
			},
		},
		{
			// Streak between milestones: skipped.
			ID:      "couple-3",
			Members: []string{"e", "f"},
			PeacefulDays: &entity.PeacefulDays{
				Enabled:       true,
				CurrentStreak: 42,
			},
		},
		{
			// Tracking disabled: skipped.
			ID:           "couple-4",
			Members:      []string{"g", "h"},
			PeacefulDays: &entity.PeacefulDays{CurrentStreak: 7},
		},
	}

	coupleRepo.EXPECT().FindPeacefulDaysCouples(ctx).Return(couples, nil)

	dispatcher.EXPECT().
		DispatchMilestone(ctx, couples[0], 100).
		Return([]*usecase.DispatchResult{usecase.Sent("msg-1"), usecase.Sent("msg-2")})

	coupleRepo.EXPECT().StampMilestoneCelebrated(ctx, "couple-1", now).Return(nil)

	celebrated, err := jobs.RunMilestoneCheck(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, celebrated)
}

func TestJobsService_RunMilestoneCheck_NoStampWhenNobodyReached(t *testing.T) {
	jobs, _, coupleRepo, dispatcher := createTestJobsService(t)
	ctx := context.Background()

	couple := &entity.Couple{
		ID:      "couple-1",
		Members: []string{"a", "b"},
		PeacefulDays: &entity.PeacefulDays{
			Enabled:       true,
			CurrentStreak: 7,
		},
	}

	coupleRepo.EXPECT().FindPeacefulDaysCouples(ctx).Return([]*entity.Couple{couple}, nil)

	dispatcher.EXPECT().
		DispatchMilestone(ctx, couple, 7).
		Return([]*usecase.DispatchResult{
			usecase.Skipped(usecase.KindPrecondition, "No token"),
			usecase.Skipped(usecase.KindPrecondition, "No token"),
		})

	celebrated, err := jobs.RunMilestoneCheck(ctx)

	require.NoError(t, err)
	assert.Zero(t, celebrated)
}

func TestJobsService_RunMilestoneCheck_QueryError(t *testing.T) {
	jobs, _, coupleRepo, _ := createTestJobsService(t)
	ctx := context.Background()

	coupleRepo.EXPECT().FindPeacefulDaysCouples(ctx).Return(nil, errors.New("firestore unavailable"))

	celebrated, err := jobs.RunMilestoneCheck(ctx)

	assert.Error(t, err)
	assert.Zero(t, celebrated)
}
