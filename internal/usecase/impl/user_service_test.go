package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "iloveyou/internal/domain/errors"
	mockRepo "iloveyou/internal/mocks/repository"
	mockUC "iloveyou/internal/mocks/usecase"
	"iloveyou/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	*userService,
	*mockRepo.MockUserRepository,
	*mockUC.MockDispatchUsecase,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	dispatcher := mockUC.NewMockDispatchUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewUserService(logger, userRepo, dispatcher).(*userService)

	return svc, userRepo, dispatcher
}

func TestUserService_UpdatePushToken(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	userRepo.EXPECT().UpdatePushToken(ctx, "user-1", "fresh-token", now).Return(nil)

	err := svc.UpdatePushToken(ctx, "user-1", "fresh-token")

	require.NoError(t, err)
}

func TestUserService_UpdatePushToken_TrimsWhitespace(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	userRepo.EXPECT().UpdatePushToken(ctx, "user-1", "fresh-token", now).Return(nil)

	err := svc.UpdatePushToken(ctx, "user-1", "  fresh-token\n")

	require.NoError(t, err)
}

func TestUserService_UpdatePushToken_EmptyToken(t *testing.T) {
	svc, _, _ := createTestUserService(t)
	ctx := context.Background()

	err := svc.UpdatePushToken(ctx, "user-1", "   ")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid-argument", appErr.ErrorCode())
}

func TestUserService_UpdatePushToken_StoreError(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		UpdatePushToken(ctx, "user-1", "token", mock.Anything).
		Return(errors.New("firestore unavailable"))

	err := svc.UpdatePushToken(ctx, "user-1", "token")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "update push token")
}

func TestUserService_SendTestNotification(t *testing.T) {
	svc, _, dispatcher := createTestUserService(t)
	ctx := context.Background()

	dispatcher.EXPECT().DispatchTest(ctx, "user-1").Return(usecase.Sent("msg-test"))

	result, err := svc.SendTestNotification(ctx, "user-1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "msg-test", result.MessageID)
}
