package usecase

import (
	"context"
)

// CoupleUsecase covers couple-level operations exposed to clients.
type CoupleUsecase interface {
	// GenerateInviteQR renders a PNG QR code for the couple's invite, after
	// verifying the caller is a member.
	GenerateInviteQR(ctx context.Context, callerUID, coupleID string) ([]byte, error)
}
