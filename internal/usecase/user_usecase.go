package usecase

import (
	"context"
)

// UserUsecase covers the user-facing token and test-notification operations.
type UserUsecase interface {
	// UpdatePushToken stores the caller's current FCM token.
	UpdatePushToken(ctx context.Context, uid, token string) error

	// SendTestNotification pushes a test notification to the caller.
	SendTestNotification(ctx context.Context, uid string) (*DispatchResult, error)
}
