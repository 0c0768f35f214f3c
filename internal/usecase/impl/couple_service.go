package impl

import (
	"context"
	"log/slog"

	domainerrors "iloveyou/internal/domain/errors"
	"iloveyou/internal/domain/repository"
	"iloveyou/internal/domain/service"
	"iloveyou/internal/errors"
	"iloveyou/internal/usecase"
)

type coupleService struct {
	logger     *slog.Logger
	coupleRepo repository.CoupleRepository
	qrcodeSvc  service.QRCodeService
}

// NewCoupleService creates the couple invite usecase.
func NewCoupleService(
	logger *slog.Logger,
	coupleRepo repository.CoupleRepository,
	qrcodeSvc service.QRCodeService,
) usecase.CoupleUsecase {
	return &coupleService{
		logger:     logger,
		coupleRepo: coupleRepo,
		qrcodeSvc:  qrcodeSvc,
	}
}

// GenerateInviteQR renders a PNG QR code for the couple's invite. Only members
// of the couple may request it.
func (s *coupleService) GenerateInviteQR(ctx context.Context, callerUID, coupleID string) ([]byte, error) {
	couple, err := s.coupleRepo.FindCoupleByID(ctx, coupleID)
	if err != nil {
		if errors.Is(err, repository.ErrCoupleNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("couple does not exist")
		}

		return nil, errors.Wrap(err, "find couple")
	}

	if !couple.HasMember(callerUID) {
		return nil, domainerrors.ErrPermissionDenied
	}

	if couple.InviteCode == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("couple has no invite code")
	}

	png, err := s.qrcodeSvc.GenerateInviteQR(couple.ID, couple.InviteCode)
	if err != nil {
		return nil, errors.Wrap(err, "generate invite QR")
	}

	return png, nil
}
