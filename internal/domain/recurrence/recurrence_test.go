package recurrence

import (
	"testing"
	"time"

	"iloveyou/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func rule(freq entity.Frequency, interval int) *entity.RecurrenceRule {
	return &entity.RecurrenceRule{Enabled: true, Frequency: freq, Interval: interval}
}

func TestNext_DailyAndWeekly(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		rule *entity.RecurrenceRule
		want time.Time
	}{
		{"daily default interval", date(2024, time.June, 1), rule(entity.FrequencyDaily, 0), date(2024, time.June, 2)},
		{"daily interval 3", date(2024, time.June, 1), rule(entity.FrequencyDaily, 3), date(2024, time.June, 4)},
		{"weekly", date(2024, time.June, 1), rule(entity.FrequencyWeekly, 1), date(2024, time.June, 8)},
		{"biweekly", date(2024, time.June, 1), rule(entity.FrequencyWeekly, 2), date(2024, time.June, 15)},
		{"daily across month boundary", date(2024, time.January, 31), rule(entity.FrequencyDaily, 1), date(2024, time.February, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ended, err := Next(tt.due, tt.rule)
			require.NoError(t, err)
			assert.False(t, ended)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestNext_MonthlyClampsDayOverflow(t *testing.T) {
	// Jan 31 in a leap year: February has 29 days.
	next, ended, err := Next(date(2024, time.January, 31), rule(entity.FrequencyMonthly, 1))
	require.NoError(t, err)
	assert.False(t, ended)
	assert.Equal(t, date(2024, time.February, 29), next)

	// Applying the calculator again must not skip March. The series stays
	// anchored to the first overflow: Feb 29 -> Mar 29.
	next, ended, err = Next(next, rule(entity.FrequencyMonthly, 1))
	require.NoError(t, err)
	assert.False(t, ended)
	assert.Equal(t, date(2024, time.March, 29), next)
}

func TestNext_MonthlyClampNonLeap(t *testing.T) {
	next, _, err := Next(date(2025, time.January, 31), rule(entity.FrequencyMonthly, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 28), next)

	next, _, err = Next(next, rule(entity.FrequencyMonthly, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 28), next)
}

func TestNext_MonthlyNoOverflowKeepsDay(t *testing.T) {
	next, _, err := Next(date(2024, time.March, 15), rule(entity.FrequencyMonthly, 2))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.May, 15), next)
}

func TestNext_MonthlyPreservesTimeOfDay(t *testing.T) {
	due := time.Date(2024, time.January, 31, 18, 45, 12, 0, time.UTC)
	next, _, err := Next(due, rule(entity.FrequencyMonthly, 1))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 18, 45, 12, 0, time.UTC), next)
}

func TestNext_YearlyClampsLeapDay(t *testing.T) {
	// Feb 29 + 1 year clamps to Feb 28 rather than rolling into March.
	next, _, err := Next(date(2024, time.February, 29), rule(entity.FrequencyYearly, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 28), next)
}

func TestNext_EndDateHaltsSeries(t *testing.T) {
	end := time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC)
	r := rule(entity.FrequencyYearly, 1)
	r.EndDate = &end

	// Next occurrence 2025-06-01 exceeds the end date: no new instance.
	_, ended, err := Next(date(2024, time.June, 1), r)
	require.NoError(t, err)
	assert.True(t, ended)
}

func TestNext_EndDateOnBoundaryStillRuns(t *testing.T) {
	end := date(2024, time.June, 8)
	r := rule(entity.FrequencyWeekly, 1)
	r.EndDate = &end

	next, ended, err := Next(date(2024, time.June, 1), r)
	require.NoError(t, err)
	assert.False(t, ended)
	assert.Equal(t, end, next)
}

func TestNext_UnknownFrequency(t *testing.T) {
	_, _, err := Next(date(2024, time.June, 1), rule(entity.Frequency("hourly"), 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestNext_NilRule(t *testing.T) {
	_, _, err := Next(date(2024, time.June, 1), nil)
	assert.Error(t, err)
}
