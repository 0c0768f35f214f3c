package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"iloveyou/internal/domain/entity"
	domainerrors "iloveyou/internal/domain/errors"
	"iloveyou/internal/domain/repository"
	mockRepo "iloveyou/internal/mocks/repository"
	mockSvc "iloveyou/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCoupleService(t *testing.T) (
	*coupleService,
	*mockRepo.MockCoupleRepository,
	*mockSvc.MockQRCodeService,
) {
	coupleRepo := mockRepo.NewMockCoupleRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewCoupleService(logger, coupleRepo, qrcodeSvc).(*coupleService)

	return svc, coupleRepo, qrcodeSvc
}

func TestCoupleService_GenerateInviteQR(t *testing.T) {
	svc, coupleRepo, qrcodeSvc := createTestCoupleService(t)
	ctx := context.Background()

	coupleRepo.EXPECT().FindCoupleByID(ctx, "couple-1").Return(&entity.Couple{
		ID:         "couple-1",
		Members:    []string{"user-1", "user-2"},
		InviteCode: "LOVE123",
	}, nil)

	qrcodeSvc.EXPECT().GenerateInviteQR("couple-1", "LOVE123").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.GenerateInviteQR(ctx, "user-1", "couple-1")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCoupleService_GenerateInviteQR_NotMember(t *testing.T) {
	svc, coupleRepo, _ := createTestCoupleService(t)
	ctx := context.Background()

	coupleRepo.EXPECT().FindCoupleByID(ctx, "couple-1").Return(&entity.Couple{
		ID:         "couple-1",
		Members:    []string{"user-1", "user-2"},
		InviteCode: "LOVE123",
	}, nil)

	_, err := svc.GenerateInviteQR(ctx, "stranger", "couple-1")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "permission-denied", appErr.ErrorCode())
}

func TestCoupleService_GenerateInviteQR_CoupleNotFound(t *testing.T) {
	svc, coupleRepo, _ := createTestCoupleService(t)
	ctx := context.Background()

	coupleRepo.EXPECT().FindCoupleByID(ctx, "ghost").Return(nil, repository.ErrCoupleNotFound)

	_, err := svc.GenerateInviteQR(ctx, "user-1", "ghost")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "not-found", appErr.ErrorCode())
}

func TestCoupleService_GenerateInviteQR_NoInviteCode(t *testing.T) {
	svc, coupleRepo, _ := createTestCoupleService(t)
	ctx := context.Background()

	coupleRepo.EXPECT().FindCoupleByID(ctx, "couple-1").Return(&entity.Couple{
		ID:      "couple-1",
		Members: []string{"user-1", "user-2"},
	}, nil)

	_, err := svc.GenerateInviteQR(ctx, "user-1", "couple-1")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid-argument", appErr.ErrorCode())
}
