// Package impl contains the business logic behind the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"iloveyou/config"
	"iloveyou/internal/domain/entity"
	"iloveyou/internal/domain/quiethours"
	"iloveyou/internal/domain/repository"
	"iloveyou/internal/domain/service"
	"iloveyou/internal/domain/template"
	"iloveyou/internal/errors"
	"iloveyou/internal/usecase"
)

// fallbackCreatorName is shown in couple-reminder bodies when the creator has
// no display name.
const fallbackCreatorName = "Người thương"

type dispatchService struct {
	logger       *slog.Logger
	userRepo     repository.UserRepository
	coupleRepo   repository.CoupleRepository
	reminderRepo repository.ReminderRepository
	pushSvc      service.PushService
	cfg          *config.NotificationConfig

	now func() time.Time
}

// NewDispatchService creates the notification dispatcher.
func NewDispatchService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	coupleRepo repository.CoupleRepository,
	reminderRepo repository.ReminderRepository,
	pushSvc service.PushService,
	cfg *config.NotificationConfig,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:       logger,
		userRepo:     userRepo,
		coupleRepo:   coupleRepo,
		reminderRepo: reminderRepo,
		pushSvc:      pushSvc,
		cfg:          cfg,
		now:          time.Now,
	}
}

// DispatchReminder pushes a personal reminder notification to userID.
func (s *dispatchService) DispatchReminder(ctx context.Context, userID string, reminder *entity.Reminder) *usecase.DispatchResult {
	return s.dispatchTo(ctx, userID, template.TypeReminder, template.Args{ReminderTitle: reminder.Title}, reminder)
}

// DispatchCoupleReminder pushes the "from creator" variant to the non-creator
// partner and a personal-style copy to the creator. Both sends run
// independently; one failing never blocks the other.
func (s *dispatchService) DispatchCoupleReminder(ctx context.Context, reminder *entity.Reminder) *usecase.CoupleDispatchResult {
	couple, err := s.coupleRepo.FindCoupleByID(ctx, reminder.CoupleID)
	if err != nil {
		kind := usecase.KindDelivery
		reason := err.Error()
		if errors.Is(err, repository.ErrCoupleNotFound) {
			kind = usecase.KindNotFound
			reason = "Couple not found"
		}
		skipped := usecase.Skipped(kind, reason)

		return &usecase.CoupleDispatchResult{Partner: skipped, Creator: skipped}
	}

	partnerID, ok := couple.Partner(reminder.CreatorID)
	if !ok {
		skipped := usecase.Skipped(usecase.KindPrecondition, "Invalid couple configuration")

		return &usecase.CoupleDispatchResult{Partner: skipped, Creator: skipped}
	}

	creatorName := fallbackCreatorName
	if creator, err := s.userRepo.FindUserByID(ctx, reminder.CreatorID); err == nil && creator.DisplayName != "" {
		creatorName = creator.DisplayName
	}

	result := &usecase.CoupleDispatchResult{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Partner = s.dispatchTo(ctx, partnerID, template.TypeCoupleReminder,
			template.Args{ReminderTitle: reminder.Title, CreatorName: creatorName}, reminder)
	}()
	go func() {
		defer wg.Done()
		result.Creator = s.dispatchTo(ctx, reminder.CreatorID, template.TypeReminder,
			template.Args{ReminderTitle: reminder.Title}, reminder)
	}()
	wg.Wait()

	return result
}

// DispatchMilestone pushes a peaceful-days celebration to every member.
func (s *dispatchService) DispatchMilestone(ctx context.Context, couple *entity.Couple, days int) []*usecase.DispatchResult {
	results := make([]*usecase.DispatchResult, len(couple.Members))

	var wg sync.WaitGroup
	for i, member := range couple.Members {
		wg.Add(1)
		go func(i int, member string) {
			defer wg.Done()
			results[i] = s.dispatchMilestoneTo(ctx, member, couple.ID, days)
		}(i, member)
	}
	wg.Wait()

	return results
}

// DispatchTest pushes a test notification, bypassing category preferences.
func (s *dispatchService) DispatchTest(ctx context.Context, userID string) *usecase.DispatchResult {
	return s.dispatchTo(ctx, userID, template.TypeTest, template.Args{}, nil)
}

// dispatchTo loads the target user and runs the full precondition and
// delivery sequence for a reminder-shaped notification.
func (s *dispatchService) dispatchTo(ctx context.Context, userID string, typ template.NotificationType, args template.Args, reminder *entity.Reminder) *usecase.DispatchResult {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return usecase.Skipped(usecase.KindNotFound, "User not found")
		}

		return usecase.Skipped(usecase.KindDelivery, err.Error())
	}

	data := map[string]string{"type": string(typ)}
	priority := "normal"
	if reminder != nil {
		data["reminderId"] = reminder.ID
		if reminder.CoupleID != "" {
			data["coupleId"] = reminder.CoupleID
		}
		data["priority"] = string(reminder.Priority)
		if reminder.Priority == entity.PriorityHigh || reminder.Priority == entity.PriorityUrgent {
			priority = "high"
		}
	}

	return s.send(ctx, user, typ, args, data, priority, reminder)
}

func (s *dispatchService) dispatchMilestoneTo(ctx context.Context, userID, coupleID string, days int) *usecase.DispatchResult {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return usecase.Skipped(usecase.KindNotFound, "User not found")
		}

		return usecase.Skipped(usecase.KindDelivery, err.Error())
	}

	data := map[string]string{
		"type":     string(template.TypeMilestone),
		"coupleId": coupleID,
	}

	return s.send(ctx, user, template.TypeMilestone, template.Args{Days: days}, data, "normal", nil)
}

// send applies the token, preference and quiet-hours preconditions, renders
// the template and calls the push API. Outcomes are classified results; no
// error escapes to the caller.
func (s *dispatchService) send(ctx context.Context, user *entity.User, typ template.NotificationType, args template.Args, data map[string]string, priority string, reminder *entity.Reminder) *usecase.DispatchResult {
	if user.FCMToken == "" {
		return usecase.Skipped(usecase.KindPrecondition, "No token")
	}

	prefs := user.Preferences
	if prefs != nil {
		if !prefs.Enabled {
			return usecase.Skipped(usecase.KindPrecondition, "Notifications disabled")
		}
		if !categoryEnabled(prefs, typ) {
			return usecase.Skipped(usecase.KindPrecondition, "Notification category disabled")
		}
		if quiethours.Suppressed(prefs.QuietHours, s.localNow(user)) {
			return usecase.Skipped(usecase.KindPrecondition, "Quiet hours active")
		}
	}

	lang := template.DefaultLanguage
	if prefs != nil {
		lang = template.ParseLanguage(prefs.Language)
	}

	tpl, err := template.Resolve(typ, lang)
	if err != nil {
		return usecase.Skipped(usecase.KindConfiguration, err.Error())
	}

	data["language"] = string(lang)
	if s.cfg != nil && s.cfg.ClickURL != "" {
		data["url"] = s.cfg.ClickURL
	}

	messageID, err := s.pushSvc.SendPush(ctx, user.FCMToken, &service.PushMessage{
		Title:    tpl.Title,
		Body:     tpl.Body(args),
		Priority: priority,
		Data:     data,
	})
	if err != nil {
		if errors.Is(err, service.ErrTokenUnregistered) {
			// Clear the stored token so the next attempt short-circuits at
			// the no-token precondition instead of hitting the push API again.
			if clearErr := s.userRepo.ClearPushToken(ctx, user.UID); clearErr != nil {
				s.logger.Warn("failed to clear unregistered token",
					slog.String("uid", user.UID),
					slog.Any("error", clearErr),
				)
			}

			return usecase.Skipped(usecase.KindTokenInvalid, "Invalid token, removed")
		}

		return usecase.Skipped(usecase.KindDelivery, err.Error())
	}

	if reminder != nil {
		// Send and status update are not atomic: a crash here leaves the
		// reminder eligible for a duplicate push next cycle, which the
		// mark-as-attempted batch write in the job bounds to one extra send.
		if markErr := s.reminderRepo.MarkNotificationSent(ctx, reminder.ID, s.now()); markErr != nil {
			s.logger.Warn("failed to mark notification sent",
				slog.String("reminder_id", reminder.ID),
				slog.Any("error", markErr),
			)
		}
	}

	return usecase.Sent(messageID)
}

// categoryEnabled maps a notification type to its preference toggle.
func categoryEnabled(prefs *entity.NotificationPreferences, typ template.NotificationType) bool {
	switch typ {
	case template.TypeReminder:
		return prefs.Reminders
	case template.TypeCoupleReminder:
		return prefs.CoupleReminders
	case template.TypeMilestone:
		return prefs.PeacefulDaysMilestones
	case template.TypeTest:
		return true
	default:
		return false
	}
}

// localNow returns the current wall-clock time in the user's timezone,
// falling back to the configured default and finally UTC.
func (s *dispatchService) localNow(user *entity.User) time.Time {
	tz := user.Timezone
	if tz == "" && s.cfg != nil {
		tz = s.cfg.DefaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	return s.now().In(loc)
}
