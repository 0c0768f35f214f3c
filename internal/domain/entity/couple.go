package entity

import (
	"time"
)

// PeacefulDays is the couple-level streak counter maintained elsewhere in the
// app; the notification pipeline only reads it to detect milestone values.
type PeacefulDays struct {
	Enabled                 bool       `firestore:"enabled" json:"enabled"`
	CurrentStreak           int        `firestore:"currentStreak" json:"currentStreak"`
	LastUpdated             *time.Time `firestore:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	LastMilestoneCelebrated *time.Time `firestore:"lastMilestoneCelebrated,omitempty" json:"lastMilestoneCelebrated,omitempty"`
}

// Couple is a Firestore document in the "couples" collection. Couple-reminder
// dispatch requires exactly two members; anything else is treated as an invalid
// configuration and skipped.
type Couple struct {
	ID           string        `firestore:"id" json:"id"`
	Members      []string      `firestore:"members" json:"members"`
	InviteCode   string        `firestore:"inviteCode,omitempty" json:"inviteCode,omitempty"`
	PeacefulDays *PeacefulDays `firestore:"peacefulDays,omitempty" json:"peacefulDays,omitempty"`
}

// Partner returns the member that is not uid, and whether the membership is a
// valid two-person configuration containing uid.
func (c *Couple) Partner(uid string) (string, bool) {
	if len(c.Members) != 2 {
		return "", false
	}
	switch uid {
	case c.Members[0]:
		return c.Members[1], true
	case c.Members[1]:
		return c.Members[0], true
	}

	return "", false
}

// HasMember reports whether uid is one of the couple's members.
func (c *Couple) HasMember(uid string) bool {
	for _, m := range c.Members {
		if m == uid {
			return true
		}
	}

	return false
}
