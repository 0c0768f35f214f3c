package firestore

import (
	"context"
	"time"

	"iloveyou/internal/domain/entity"
	"iloveyou/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type reminderRepository struct {
	client *firestore.Client
}

// NewReminderRepository creates the Firestore-backed reminder repository.
func NewReminderRepository(client *firestore.Client) repository.ReminderRepository {
	return &reminderRepository{client: client}
}

func (r *reminderRepository) CreateReminder(ctx context.Context, reminder *entity.Reminder) error {
	doc := r.client.Collection(remindersCollection).Doc(reminder.ID)
	if _, err := doc.Create(ctx, reminder); err != nil {
		return errors.Wrap(err, "create reminder document")
	}

	return nil
}

func (r *reminderRepository) FindReminderByID(ctx context.Context, id string) (*entity.Reminder, error) {
	snap, err := r.client.Collection(remindersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "get reminder document")
	}

	var reminder entity.Reminder
	if err := snap.DataTo(&reminder); err != nil {
		return nil, errors.Wrap(err, "decode reminder document")
	}
	reminder.ID = snap.Ref.ID

	return &reminder, nil
}

func (r *reminderRepository) FindDueReminders(ctx context.Context, dueBefore time.Time, limit int) ([]*entity.Reminder, error) {
	query := r.client.Collection(remindersCollection).
		Where("completed", "==", false).
		Where("notificationSent", "==", false).
		Where("dueDate", "<=", dueBefore).
		OrderBy("dueDate", firestore.Asc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reminders []*entity.Reminder
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate due reminders")
		}

		var reminder entity.Reminder
		if err := snap.DataTo(&reminder); err != nil {
			return nil, errors.Wrap(err, "decode reminder document")
		}
		reminder.ID = snap.Ref.ID
		reminders = append(reminders, &reminder)
	}

	return reminders, nil
}

func (r *reminderRepository) MarkNotificationSent(ctx context.Context, id string, at time.Time) error {
	_, err := r.client.Collection(remindersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "notificationSent", Value: true},
		{Path: "lastNotificationSent", Value: at},
		{Path: "updatedAt", Value: at},
	})
	if err != nil {
		return errors.Wrap(err, "mark notification sent")
	}

	return nil
}

// ApplyNotificationResults writes the per-reminder bookkeeping in one bulk
// commit. Failed dispatches are marked as attempted too, so the next sweep
// never reprocesses them.
func (r *reminderRepository) ApplyNotificationResults(ctx context.Context, results []*entity.NotificationResult) error {
	if len(results) == 0 {
		return nil
	}

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(results))

	for _, result := range results {
		updates := []firestore.Update{
			{Path: "notificationSent", Value: true},
			{Path: "notificationAttempts", Value: firestore.Increment(1)},
			{Path: "updatedAt", Value: result.SentAt},
		}
		if result.Success {
			updates = append(updates,
				firestore.Update{Path: "lastNotificationSent", Value: result.SentAt},
				firestore.Update{Path: "lastNotificationError", Value: firestore.Delete},
			)
		} else {
			updates = append(updates,
				firestore.Update{Path: "lastNotificationError", Value: result.Error},
			)
		}

		job, err := bw.Update(r.client.Collection(remindersCollection).Doc(result.ReminderID), updates)
		if err != nil {
			bw.End()

			return errors.Wrap(err, "enqueue bookkeeping update")
		}
		jobs = append(jobs, job)
	}

	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.Wrapf(err, "apply bookkeeping for reminder %s", results[i].ReminderID)
		}
	}

	return nil
}

func (r *reminderRepository) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	_, err := r.client.Collection(remindersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "completed", Value: true},
		{Path: "completedAt", Value: at},
		{Path: "updatedAt", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrReminderNotFound
		}

		return errors.Wrap(err, "mark completed")
	}

	return nil
}

func (r *reminderRepository) DeleteCompletedBefore(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	query := r.client.Collection(remindersCollection).
		Where("completed", "==", true).
		Where("completedAt", "<", cutoff).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	bw := r.client.BulkWriter(ctx)
	deleted := 0
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			bw.End()

			return deleted, errors.Wrap(err, "iterate completed reminders")
		}

		if _, err := bw.Delete(snap.Ref); err != nil {
			bw.End()

			return deleted, errors.Wrap(err, "enqueue delete")
		}
		deleted++
	}
	bw.End()

	return deleted, nil
}
