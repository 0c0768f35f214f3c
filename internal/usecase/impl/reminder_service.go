package impl

import (
	"context"
	"log/slog"
	"time"

	"iloveyou/internal/domain/entity"
	domainerrors "iloveyou/internal/domain/errors"
	"iloveyou/internal/domain/recurrence"
	"iloveyou/internal/domain/repository"
	"iloveyou/internal/domain/service"
	"iloveyou/internal/errors"
	"iloveyou/internal/usecase"

	"github.com/google/uuid"
)

type reminderService struct {
	logger       *slog.Logger
	reminderRepo repository.ReminderRepository
	coupleRepo   repository.CoupleRepository
	dispatcher   usecase.DispatchUsecase
	publisher    service.EventPublisher

	now   func() time.Time
	newID func() string
}

// NewReminderService creates the reminder state-change usecase.
func NewReminderService(
	logger *slog.Logger,
	reminderRepo repository.ReminderRepository,
	coupleRepo repository.CoupleRepository,
	dispatcher usecase.DispatchUsecase,
	publisher service.EventPublisher,
) usecase.ReminderUsecase {
	return &reminderService{
		logger:       logger,
		reminderRepo: reminderRepo,
		coupleRepo:   coupleRepo,
		dispatcher:   dispatcher,
		publisher:    publisher,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// CompleteReminder marks the reminder completed and publishes a completion
// event. The publish failing is logged but never rolls back the completion:
// spawning the next recurring instance is best-effort async work.
func (s *reminderService) CompleteReminder(ctx context.Context, callerUID, reminderID string) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("reminder does not exist")
		}

		return nil, errors.Wrap(err, "find reminder")
	}

	if err := s.authorize(ctx, callerUID, reminder); err != nil {
		return nil, err
	}

	if reminder.Completed {
		return reminder, nil
	}

	now := s.now()
	if err := s.reminderRepo.MarkCompleted(ctx, reminderID, now); err != nil {
		return nil, errors.Wrap(err, "mark completed")
	}
	reminder.Completed = true
	reminder.CompletedAt = &now
	reminder.UpdatedAt = now

	if reminder.IsRecurring() {
		event := &service.ReminderEvent{
			Type:       service.EventReminderCompleted,
			ReminderID: reminder.ID,
			CoupleID:   reminder.CoupleID,
			UserID:     reminder.UserID,
		}
		if err := s.publisher.PublishReminderEvent(ctx, event); err != nil {
			s.logger.Error("failed to publish reminder completed event",
				slog.String("reminder_id", reminder.ID),
				slog.Any("error", err),
			)
		}
	}

	return reminder, nil
}

// SpawnNextOccurrence creates the next instance of a completed recurring
// reminder. Non-recurring, not-yet-completed and ended series all return nil
// without error: the event is consumed either way.
func (s *reminderService) SpawnNextOccurrence(ctx context.Context, reminderID string) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "find reminder")
	}

	if !reminder.Completed || !reminder.IsRecurring() {
		return nil, nil
	}

	nextDue, ended, err := recurrence.Next(reminder.DueDate, reminder.Recurring)
	if err != nil {
		return nil, errors.Wrap(err, "compute next occurrence")
	}
	if ended {
		s.logger.Info("recurring series ended",
			slog.String("reminder_id", reminder.ID),
		)

		return nil, nil
	}

	next := reminder.NextInstance(s.newID(), nextDue, s.now())
	if err := s.reminderRepo.CreateReminder(ctx, next); err != nil {
		return nil, errors.Wrap(err, "create next instance")
	}

	s.logger.Info("spawned next recurring instance",
		slog.String("parent_id", reminder.ID),
		slog.String("reminder_id", next.ID),
		slog.Time("due_date", next.DueDate),
	)

	return next, nil
}

// SendReminderNow dispatches a personal reminder on demand.
func (s *reminderService) SendReminderNow(ctx context.Context, callerUID, reminderID string) (*usecase.DispatchResult, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("reminder does not exist")
		}

		return nil, errors.Wrap(err, "find reminder")
	}

	if err := s.authorize(ctx, callerUID, reminder); err != nil {
		return nil, err
	}

	target := reminder.UserID
	if target == "" {
		target = reminder.CreatorID
	}

	return s.dispatcher.DispatchReminder(ctx, target, reminder), nil
}

// SendCoupleReminderNow dispatches a couple reminder on demand.
func (s *reminderService) SendCoupleReminderNow(ctx context.Context, callerUID, reminderID string) (*usecase.CoupleDispatchResult, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("reminder does not exist")
		}

		return nil, errors.Wrap(err, "find reminder")
	}

	if reminder.Type != entity.ReminderTypeCouple || reminder.CoupleID == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("reminder is not a couple reminder")
	}

	if err := s.authorize(ctx, callerUID, reminder); err != nil {
		return nil, err
	}

	return s.dispatcher.DispatchCoupleReminder(ctx, reminder), nil
}

// authorize checks that callerUID may act on the reminder: the owner or
// creator of a personal reminder, or any member of a couple reminder's couple.
func (s *reminderService) authorize(ctx context.Context, callerUID string, reminder *entity.Reminder) error {
	if callerUID == reminder.UserID || callerUID == reminder.CreatorID {
		return nil
	}

	if reminder.CoupleID != "" {
		couple, err := s.coupleRepo.FindCoupleByID(ctx, reminder.CoupleID)
		if err != nil {
			if errors.Is(err, repository.ErrCoupleNotFound) {
				return domainerrors.ErrPermissionDenied
			}

			return errors.Wrap(err, "find couple")
		}
		if couple.HasMember(callerUID) {
			return nil
		}
	}

	return domainerrors.ErrPermissionDenied
}
