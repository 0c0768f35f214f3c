// Package quiethours evaluates per-user notification suppression windows.
package quiethours

import (
	"strconv"
	"strings"
	"time"

	"iloveyou/internal/domain/entity"
)

// Suppressed reports whether notifications are currently suppressed for the
// given quiet-hours window. now must already be in the user's wall-clock
// timezone.
//
// The evaluation fails open: a disabled, missing, or malformed configuration
// yields false, so a broken config costs the user an extra notification rather
// than a silently muted one.
func Suppressed(cfg *entity.QuietHours, now time.Time) bool {
	if cfg == nil || !cfg.Enabled {
		return false
	}

	start, ok := minuteOfDay(cfg.Start)
	if !ok {
		return false
	}
	end, ok := minuteOfDay(cfg.End)
	if !ok {
		return false
	}

	current := now.Hour()*60 + now.Minute()

	if start <= end {
		// Same-day window, e.g. 12:00-14:00.
		return current >= start && current <= end
	}

	// Overnight window, e.g. 22:00-08:00.
	return current >= start || current <= end
}

// minuteOfDay parses an "HH:MM" string into minutes since midnight.
func minuteOfDay(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}

	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}
