package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"iloveyou/internal/domain/entity"
	domainerrors "iloveyou/internal/domain/errors"
	"iloveyou/internal/domain/repository"
	"iloveyou/internal/domain/service"
	mockRepo "iloveyou/internal/mocks/repository"
	mockSvc "iloveyou/internal/mocks/service"
	mockUC "iloveyou/internal/mocks/usecase"
	"iloveyou/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReminderService(t *testing.T) (
	*reminderService,
	*mockRepo.MockReminderRepository,
	*mockRepo.MockCoupleRepository,
	*mockUC.MockDispatchUsecase,
	*mockSvc.MockEventPublisher,
) {
	reminderRepo := mockRepo.NewMockReminderRepository(t)
	coupleRepo := mockRepo.NewMockCoupleRepository(t)
	dispatcher := mockUC.NewMockDispatchUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewReminderService(
		logger,
		reminderRepo,
		coupleRepo,
		dispatcher,
		publisher,
	).(*reminderService)

	return svc, reminderRepo, coupleRepo, dispatcher, publisher
}

func recurringReminder() *entity.Reminder {
	return &entity.Reminder{
		ID:        "rem-1",
		Title:     "Uống thuốc",
		Type:      entity.ReminderTypePersonal,
		UserID:    "user-1",
		CreatorID: "user-1",
		DueDate:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Recurring: &entity.RecurrenceRule{Enabled: true, Frequency: entity.FrequencyDaily},
	}
}

func TestReminderService_CompleteReminder_PublishesEvent(t *testing.T) {
	svc, reminderRepo, _, _, publisher := createTestReminderService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(recurringReminder(), nil)
	reminderRepo.EXPECT().MarkCompleted(ctx, "rem-1", now).Return(nil)

	publisher.EXPECT().
		PublishReminderEvent(ctx, mock.MatchedBy(func(event *service.ReminderEvent) bool {
			return event.Type == service.EventReminderCompleted && event.ReminderID == "rem-1"
		})).
		Return(nil)

	completed, err := svc.CompleteReminder(ctx, "user-1", "rem-1")

	require.NoError(t, err)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, now, *completed.CompletedAt)
}

func TestReminderService_CompleteReminder_NonRecurringSkipsEvent(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	reminder := recurringReminder()
	reminder.Recurring = nil

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)
	reminderRepo.EXPECT().MarkCompleted(ctx, "rem-1", mock.Anything).Return(nil)

	completed, err := svc.CompleteReminder(ctx, "user-1", "rem-1")

	require.NoError(t, err)
	assert.True(t, completed.Completed)
}

func TestReminderService_CompleteReminder_AlreadyCompleted(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	reminder := recurringReminder()
	reminder.Completed = true

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)

	completed, err := svc.CompleteReminder(ctx, "user-1", "rem-1")

	require.NoError(t, err)
	assert.True(t, completed.Completed)
}

func TestReminderService_CompleteReminder_PublishFailureDoesNotRollBack(t *testing.T) {
	svc, reminderRepo, _, _, publisher := createTestReminderService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(recurringReminder(), nil)
	reminderRepo.EXPECT().MarkCompleted(ctx, "rem-1", mock.Anything).Return(nil)
	publisher.EXPECT().
		PublishReminderEvent(ctx, mock.Anything).
		Return(assert.AnError)

	completed, err := svc.CompleteReminder(ctx, "user-1", "rem-1")

	require.NoError(t, err)
	assert.True(t, completed.Completed)
}

func TestReminderService_CompleteReminder_NotFound(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().FindReminderByID(ctx, "ghost").Return(nil, repository.ErrReminderNotFound)

	_, err := svc.CompleteReminder(ctx, "user-1", "ghost")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "not-found", appErr.ErrorCode())
}

func TestReminderService_CompleteReminder_PermissionDenied(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(recurringReminder(), nil)

	_, err := svc.CompleteReminder(ctx, "stranger", "rem-1")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "permission-denied", appErr.ErrorCode())
}

func TestReminderService_CompleteReminder_CoupleMemberAllowed(t *testing.T) {
	svc, reminderRepo, coupleRepo, _, publisher := createTestReminderService(t)
	ctx := context.Background()

	reminder := recurringReminder()
	reminder.Type = entity.ReminderTypeCouple
	reminder.UserID = ""
	reminder.CoupleID = "couple-1"

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)
	coupleRepo.EXPECT().FindCoupleByID(ctx, "couple-1").Return(&entity.Couple{
		ID:      "couple-1",
		Members: []string{"user-1", "user-2"},
	}, nil)
	reminderRepo.EXPECT().MarkCompleted(ctx, "rem-1", mock.Anything).Return(nil)
	publisher.EXPECT().PublishReminderEvent(ctx, mock.Anything).Return(nil)

	completed, err := svc.CompleteReminder(ctx, "user-2", "rem-1")

	require.NoError(t, err)
	assert.True(t, completed.Completed)
}

func TestReminderService_SpawnNextOccurrence_CreatesInstance(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	svc.newID = func() string { return "rem-next" }

	reminder := recurringReminder()
	reminder.Completed = true

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)
	reminderRepo.EXPECT().
		CreateReminder(ctx, mock.MatchedBy(func(next *entity.Reminder) bool {
			return next.ID == "rem-next" &&
				next.ParentReminderID == "rem-1" &&
				next.DueDate.Equal(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)) &&
				!next.Completed &&
				!next.NotificationSent &&
				next.NotificationAttempts == 0
		})).
		Return(nil)

	next, err := svc.SpawnNextOccurrence(ctx, "rem-1")

	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "rem-next", next.ID)
}

func TestReminderService_SpawnNextOccurrence_NotCompleted(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(recurringReminder(), nil)

	next, err := svc.SpawnNextOccurrence(ctx, "rem-1")

	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestReminderService_SpawnNextOccurrence_NotRecurring(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	reminder := recurringReminder()
	reminder.Completed = true
	reminder.Recurring = nil

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)

	next, err := svc.SpawnNextOccurrence(ctx, "rem-1")

	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestReminderService_SpawnNextOccurrence_SeriesEnded(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	endDate := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
	reminder := recurringReminder()
	reminder.Completed = true
	reminder.Recurring.EndDate = &endDate

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)

	next, err := svc.SpawnNextOccurrence(ctx, "rem-1")

	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestReminderService_SpawnNextOccurrence_ReminderGone(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	// A deleted reminder means the event is stale; consume it quietly.
	reminderRepo.EXPECT().FindReminderByID(ctx, "ghost").Return(nil, repository.ErrReminderNotFound)

	next, err := svc.SpawnNextOccurrence(ctx, "ghost")

	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestReminderService_SendReminderNow(t *testing.T) {
	svc, reminderRepo, _, dispatcher, _ := createTestReminderService(t)
	ctx := context.Background()

	reminder := recurringReminder()
	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)
	dispatcher.EXPECT().DispatchReminder(ctx, "user-1", reminder).Return(usecase.Sent("msg-1"))

	result, err := svc.SendReminderNow(ctx, "user-1", "rem-1")

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestReminderService_SendCoupleReminderNow_RejectsPersonal(t *testing.T) {
	svc, reminderRepo, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(recurringReminder(), nil)

	_, err := svc.SendCoupleReminderNow(ctx, "user-1", "rem-1")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid-argument", appErr.ErrorCode())
}

func TestReminderService_SendCoupleReminderNow(t *testing.T) {
	svc, reminderRepo, coupleRepo, dispatcher, _ := createTestReminderService(t)
	ctx := context.Background()

	reminder := recurringReminder()
	reminder.Type = entity.ReminderTypeCouple
	reminder.UserID = ""
	reminder.CoupleID = "couple-1"

	reminderRepo.EXPECT().FindReminderByID(ctx, "rem-1").Return(reminder, nil)
	coupleRepo.EXPECT().FindCoupleByID(ctx, "couple-1").Return(&entity.Couple{
		ID:      "couple-1",
		Members: []string{"user-1", "user-2"},
	}, nil)
	dispatcher.EXPECT().DispatchCoupleReminder(ctx, reminder).Return(&usecase.CoupleDispatchResult{
		Partner: usecase.Sent("msg-1"),
		Creator: usecase.Sent("msg-2"),
	})

	result, err := svc.SendCoupleReminderNow(ctx, "user-2", "rem-1")

	require.NoError(t, err)
	assert.True(t, result.AnySuccess())
}
