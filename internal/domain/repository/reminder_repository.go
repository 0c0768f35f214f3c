// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"iloveyou/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReminderNotFound is returned when a reminder document does not exist.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository defines the interface for reminder-related store
// operations. The store is the single source of truth: jobs read fresh on
// every invocation and hold no authoritative in-process state.
type ReminderRepository interface {
	// CreateReminder persists a new reminder document.
	CreateReminder(ctx context.Context, reminder *entity.Reminder) error

	// FindReminderByID retrieves a reminder by its document ID.
	FindReminderByID(ctx context.Context, id string) (*entity.Reminder, error)

	// FindDueReminders retrieves up to limit reminders with
	// dueDate <= dueBefore, completed == false and notificationSent == false.
	FindDueReminders(ctx context.Context, dueBefore time.Time, limit int) ([]*entity.Reminder, error)

	// MarkNotificationSent stamps notificationSent and lastNotificationSent
	// after a successful push delivery.
	MarkNotificationSent(ctx context.Context, id string, at time.Time) error

	// ApplyNotificationResults batch-writes per-reminder dispatch bookkeeping
	// (attempt counter, last error, mark-as-attempted) in a single commit.
	ApplyNotificationResults(ctx context.Context, results []*entity.NotificationResult) error

	// MarkCompleted sets completed and completedAt on a reminder.
	MarkCompleted(ctx context.Context, id string, at time.Time) error

	// DeleteCompletedBefore deletes up to limit reminders completed before
	// cutoff and returns the number deleted.
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time, limit int) (int, error)
}
