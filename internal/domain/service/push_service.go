// Package service defines interfaces for external delivery services.
package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrTokenUnregistered is returned by PushService implementations when the
// delivery API reports the device token as invalid or no longer registered.
// The dispatcher reacts by clearing the user's stored token.
var ErrTokenUnregistered = errors.New("push token invalid or unregistered")

// PushMessage is the platform-independent content of a push notification.
// Implementations translate it into platform-specific payload blocks
// (icon, sound, vibration pattern, action buttons, click URL).
type PushMessage struct {
	Title    string
	Body     string
	Priority string
	// Data is the opaque payload delivered alongside the notification
	// (type, reminderId, coupleId, priority, language, url).
	Data map[string]string
}

// PushService defines the interface for push delivery.
type PushService interface {
	// SendPush delivers a message to a single device token and returns the
	// provider message ID. Unregistered-token failures satisfy
	// errors.Is(err, ErrTokenUnregistered).
	SendPush(ctx context.Context, token string, msg *PushMessage) (string, error)
}
