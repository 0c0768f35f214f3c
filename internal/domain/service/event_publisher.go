package service

import (
	"context"
)

// Reminder event types consumed by the worker delivery.
const (
	EventReminderCompleted = "reminder.completed"
)

// ReminderEvent is published when a reminder changes state in a way that
// requires async processing (currently: completion of a recurring reminder,
// which spawns the next instance).
type ReminderEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`
	ReminderID string `json:"reminder_id"`
	CoupleID   string `json:"couple_id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
}

// EventPublisher defines the interface for publishing reminder events to a
// message queue.
type EventPublisher interface {
	// PublishReminderEvent publishes a reminder event for async processing.
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
