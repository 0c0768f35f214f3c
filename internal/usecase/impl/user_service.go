package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "iloveyou/internal/domain/errors"
	"iloveyou/internal/domain/repository"
	"iloveyou/internal/errors"
	"iloveyou/internal/usecase"
)

type userService struct {
	logger     *slog.Logger
	userRepo   repository.UserRepository
	dispatcher usecase.DispatchUsecase

	now func() time.Time
}

// NewUserService creates the user token and test-notification usecase.
func NewUserService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	dispatcher usecase.DispatchUsecase,
) usecase.UserUsecase {
	return &userService{
		logger:     logger,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// UpdatePushToken stores the caller's current FCM token.
func (s *userService) UpdatePushToken(ctx context.Context, uid, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("token is required")
	}

	if err := s.userRepo.UpdatePushToken(ctx, uid, token, s.now()); err != nil {
		return errors.Wrap(err, "update push token")
	}

	s.logger.Info("push token updated", slog.String("uid", uid))

	return nil
}

// SendTestNotification pushes a test notification to the caller.
func (s *userService) SendTestNotification(ctx context.Context, uid string) (*usecase.DispatchResult, error) {
	return s.dispatcher.DispatchTest(ctx, uid), nil
}
