package usecase

import (
	"context"

	"iloveyou/internal/domain/entity"
)

// ReminderUsecase covers reminder state changes and the callable dispatch
// entry points.
type ReminderUsecase interface {
	// CompleteReminder marks the reminder completed on behalf of callerUID
	// (owner or couple member) and publishes a completion event so the worker
	// can spawn the next recurring instance.
	CompleteReminder(ctx context.Context, callerUID, reminderID string) (*entity.Reminder, error)

	// SpawnNextOccurrence creates the next instance of a completed recurring
	// reminder. Returns nil (no error) when the reminder is not recurring,
	// not completed, or the series has ended.
	SpawnNextOccurrence(ctx context.Context, reminderID string) (*entity.Reminder, error)

	// SendReminderNow dispatches a personal reminder notification on demand,
	// after verifying the caller owns the reminder.
	SendReminderNow(ctx context.Context, callerUID, reminderID string) (*DispatchResult, error)

	// SendCoupleReminderNow dispatches a couple reminder on demand, after
	// verifying the caller belongs to the reminder's couple.
	SendCoupleReminderNow(ctx context.Context, callerUID, reminderID string) (*CoupleDispatchResult, error)
}
