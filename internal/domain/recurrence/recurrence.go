// Package recurrence computes next occurrence dates for recurring reminders.
package recurrence

import (
	"time"

	"iloveyou/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnknownFrequency is returned for a frequency outside the supported set.
// Callers treat it as a configuration error: the series halts and no next
// instance is produced.
var ErrUnknownFrequency = errors.New("unknown recurrence frequency")

// Next computes the occurrence following due under rule.
//
// The next occurrence is a pure function of the previous one: add the interval,
// and when the day-of-month overflows the target month (monthly and yearly
// units), clamp to the last day of that month. Jan 31 + 1 month is Feb 28/29,
// and the occurrence after that is Mar 28/29 — the series stays anchored to the
// first overflow rather than reverting to the original day.
//
// ended is true when the computed occurrence falls past rule.EndDate; the
// returned time is zero in that case.
func Next(due time.Time, rule *entity.RecurrenceRule) (next time.Time, ended bool, err error) {
	if rule == nil {
		return time.Time{}, false, errors.New("nil recurrence rule")
	}

	interval := rule.IntervalOrDefault()

	switch rule.Frequency {
	case entity.FrequencyDaily:
		next = due.AddDate(0, 0, interval)
	case entity.FrequencyWeekly:
		next = due.AddDate(0, 0, 7*interval)
	case entity.FrequencyMonthly:
		next = addMonthsClamped(due, interval)
	case entity.FrequencyYearly:
		next = addMonthsClamped(due, 12*interval)
	default:
		return time.Time{}, false, errors.Wrapf(ErrUnknownFrequency, "%q", rule.Frequency)
	}

	if rule.EndDate != nil && next.After(*rule.EndDate) {
		return time.Time{}, true, nil
	}

	return next, false, nil
}

// addMonthsClamped adds months to t, clamping the day-of-month to the last
// valid day of the target month instead of letting time.AddDate roll over
// (Jan 31 + 1 month must be Feb 28/29, not Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := month + time.Month(months)

	if last := daysIn(year, target, t.Location()); day > last {
		day = last
	}

	return time.Date(year, target, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month. time.Date normalizes
// out-of-range months, and day zero of the following month is the last day of
// this one.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
