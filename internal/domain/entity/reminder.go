// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// ReminderType distinguishes personal reminders from shared couple reminders.
type ReminderType string

const (
	// ReminderTypePersonal is a reminder owned by a single user.
	ReminderTypePersonal ReminderType = "personal"
	// ReminderTypeCouple is a reminder shared between both members of a couple.
	ReminderTypeCouple ReminderType = "couple"
)

// Priority is the user-selected urgency of a reminder.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Frequency is the unit of a recurrence rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurrenceRule describes how a reminder repeats. A completed reminder with an
// enabled rule spawns a new instance due one interval later.
type RecurrenceRule struct {
	Enabled   bool       `firestore:"enabled" json:"enabled"`
	Frequency Frequency  `firestore:"frequency" json:"frequency"`
	Interval  int        `firestore:"interval,omitempty" json:"interval,omitempty"` // defaults to 1
	EndDate   *time.Time `firestore:"endDate,omitempty" json:"endDate,omitempty"`
}

// IntervalOrDefault returns the configured interval, treating zero or negative
// values as 1.
func (r *RecurrenceRule) IntervalOrDefault() int {
	if r == nil || r.Interval < 1 {
		return 1
	}

	return r.Interval
}

// Reminder is a Firestore document in the "reminders" collection.
// Exactly one of UserID (personal) or CoupleID (couple) is meaningful per Type.
type Reminder struct {
	ID          string       `firestore:"id" json:"id"`
	Title       string       `firestore:"title" json:"title"`
	Description string       `firestore:"description,omitempty" json:"description,omitempty"`
	Type        ReminderType `firestore:"type" json:"type"`
	UserID      string       `firestore:"userId,omitempty" json:"userId,omitempty"`
	CreatorID   string       `firestore:"creatorId" json:"creatorId"`
	CoupleID    string       `firestore:"coupleId,omitempty" json:"coupleId,omitempty"`
	DueDate     time.Time    `firestore:"dueDate" json:"dueDate"`
	Priority    Priority     `firestore:"priority" json:"priority"`
	Category    string       `firestore:"category,omitempty" json:"category,omitempty"`

	Completed   bool       `firestore:"completed" json:"completed"`
	CompletedAt *time.Time `firestore:"completedAt,omitempty" json:"completedAt,omitempty"`

	// Notification bookkeeping. NotificationSent is monotonic false->true for a
	// given instance; a freshly spawned recurring instance starts at false again.
	NotificationSent      bool       `firestore:"notificationSent" json:"notificationSent"`
	LastNotificationSent  *time.Time `firestore:"lastNotificationSent,omitempty" json:"lastNotificationSent,omitempty"`
	NotificationAttempts  int        `firestore:"notificationAttempts" json:"notificationAttempts"`
	LastNotificationError string     `firestore:"lastNotificationError,omitempty" json:"lastNotificationError,omitempty"`

	Recurring        *RecurrenceRule `firestore:"recurring,omitempty" json:"recurring,omitempty"`
	ParentReminderID string          `firestore:"parentReminderId,omitempty" json:"parentReminderId,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// IsRecurring reports whether completing this reminder should spawn a next
// instance.
func (r *Reminder) IsRecurring() bool {
	return r.Recurring != nil && r.Recurring.Enabled
}

// NextInstance clones the reminder into a fresh instance due at nextDue, with
// completion and notification state reset and a back-reference to the parent.
func (r *Reminder) NextInstance(id string, nextDue, now time.Time) *Reminder {
	next := *r
	next.ID = id
	next.DueDate = nextDue
	next.Completed = false
	next.CompletedAt = nil
	next.NotificationSent = false
	next.LastNotificationSent = nil
	next.NotificationAttempts = 0
	next.LastNotificationError = ""
	next.ParentReminderID = r.ID
	next.CreatedAt = now
	next.UpdatedAt = now

	return &next
}

// NotificationResult carries the per-reminder bookkeeping written back after a
// dispatch attempt. Attempts are recorded regardless of outcome so a reminder
// is never retried forever.
type NotificationResult struct {
	ReminderID string
	Success    bool
	SentAt     time.Time
	Error      string
}
