package compensation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holidayOn(year int, month time.Month, day int, name string) Holiday {
	return Holiday{Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Name: name}
}

func TestCalculateWorkingDaysJanuary2025(t *testing.T) {
	summary, err := CalculateWorkingDays(2025, time.January, WeeklyOffPolicy{Kind: WeeklyOffStandard}, nil)
	require.NoError(t, err)
	assert.Equal(t, 31, summary.TotalDays)
	assert.Equal(t, 8, summary.WeekendCount)
	assert.Equal(t, 0, summary.HolidayCount)
	assert.Equal(t, 23, summary.WorkingDays)
}

func TestCalculateWorkingDaysHolidayOnWeekday(t *testing.T) {
	holidays := []Holiday{holidayOn(2025, time.January, 1, "New Year")}
	summary, err := CalculateWorkingDays(2025, time.January, WeeklyOffPolicy{Kind: WeeklyOffStandard}, holidays)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.HolidayCount)
	assert.Equal(t, 22, summary.WorkingDays)
}

func TestCalculateWorkingDaysHolidayOnWeekendNotDoubleCounted(t *testing.T) {
	// January 4, 2025 is a Saturday: already a weekend, must not be
	// subtracted again as a holiday.
	holidays := []Holiday{holidayOn(2025, time.January, 4, "Weekend Festival")}
	summary, err := CalculateWorkingDays(2025, time.January, WeeklyOffPolicy{Kind: WeeklyOffStandard}, holidays)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.HolidayCount)
	assert.Equal(t, 23, summary.WorkingDays)
}

func TestCalculateWorkingDaysDuplicateHolidaysCountOnce(t *testing.T) {
	holidays := []Holiday{
		holidayOn(2025, time.January, 1, "New Year"),
		holidayOn(2025, time.January, 1, "New Year Observed"),
	}
	summary, err := CalculateWorkingDays(2025, time.January, WeeklyOffPolicy{Kind: WeeklyOffStandard}, holidays)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.HolidayCount)
}

func TestCalculateWorkingDaysIgnoresOtherMonths(t *testing.T) {
	holidays := []Holiday{holidayOn(2025, time.February, 3, "Out of range")}
	summary, err := CalculateWorkingDays(2025, time.January, WeeklyOffPolicy{Kind: WeeklyOffStandard}, holidays)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.HolidayCount)
	assert.Equal(t, 23, summary.WorkingDays)
}

func TestCalculateWorkingDaysAllDaysOff(t *testing.T) {
	policy := WeeklyOffPolicy{
		Kind: WeeklyOffCustomDays,
		CustomDays: []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
	}
	summary, err := CalculateWorkingDays(2025, time.January, policy, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.WorkingDays)
}
