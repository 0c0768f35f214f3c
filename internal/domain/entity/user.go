package entity

import (
	"time"
)

// QuietHours is a per-user daily window during which pushes are suppressed.
// Start and End are "HH:MM" wall-clock strings; a window where Start > End
// spans midnight (e.g. 22:00-08:00).
type QuietHours struct {
	Enabled bool   `firestore:"enabled" json:"enabled"`
	Start   string `firestore:"start" json:"start"`
	End     string `firestore:"end" json:"end"`
}

// NotificationPreferences controls which notification categories a user
// receives. Enabled is the master switch.
type NotificationPreferences struct {
	Enabled                bool        `firestore:"enabled" json:"enabled"`
	Reminders              bool        `firestore:"reminders" json:"reminders"`
	CoupleReminders        bool        `firestore:"coupleReminders" json:"coupleReminders"`
	LoveMessages           bool        `firestore:"loveMessages" json:"loveMessages"`
	PeacefulDaysMilestones bool        `firestore:"peacefulDaysMilestones" json:"peacefulDaysMilestones"`
	Language               string      `firestore:"language,omitempty" json:"language,omitempty"`
	QuietHours             *QuietHours `firestore:"quietHours,omitempty" json:"quietHours,omitempty"`
}

// User is a Firestore document in the "users" collection. FCMToken is cleared
// by the dispatcher when push delivery reports the token as unregistered.
type User struct {
	UID             string                   `firestore:"uid" json:"uid"`
	DisplayName     string                   `firestore:"displayName,omitempty" json:"displayName,omitempty"`
	FCMToken        string                   `firestore:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	FCMTokenUpdated *time.Time               `firestore:"fcmTokenUpdated,omitempty" json:"fcmTokenUpdated,omitempty"`
	Preferences     *NotificationPreferences `firestore:"notificationPreferences,omitempty" json:"notificationPreferences,omitempty"`
	Timezone        string                   `firestore:"timezone,omitempty" json:"timezone,omitempty"`
}
