package repository

import (
	"context"
	"time"

	"iloveyou/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user document does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	// FindUserByID retrieves a user by uid.
	FindUserByID(ctx context.Context, uid string) (*entity.User, error)

	// UpdatePushToken stores a fresh FCM token with its update timestamp.
	UpdatePushToken(ctx context.Context, uid, token string, at time.Time) error

	// ClearPushToken removes the stored FCM token fields after the push API
	// reports the token as unregistered, so later dispatches short-circuit at
	// the no-token precondition.
	ClearPushToken(ctx context.Context, uid string) error
}
