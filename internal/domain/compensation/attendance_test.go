package compensation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dayWith(day int, status string) AttendanceDay {
	return AttendanceDay{
		Date:   time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC),
		Status: status,
	}
}

func TestAggregateAttendanceCounts(t *testing.T) {
	days := []AttendanceDay{
		dayWith(1, AttendancePresent),
		dayWith(2, AttendancePresent),
		dayWith(3, AttendanceHalfDay),
		dayWith(6, AttendanceAbsent),
		dayWith(7, AttendancePending),
		dayWith(8, AttendanceNotMarked),
	}

	summary := AggregateAttendance(days, false)
	assert.True(t, summary.PresentDays.Equal(decimal.NewFromFloat(2.5)),
		"expected 2.5 present days, got %s", summary.PresentDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 0, summary.LeaveDays)
	assert.Empty(t, summary.Violations)
}

func TestAggregateAttendanceLeaves(t *testing.T) {
	approved := dayWith(9, AttendanceOnLeave)
	approved.LeaveApproved = true
	unapproved := dayWith(10, AttendanceOnLeave)

	tests := []struct {
		name          string
		includeLeaves bool
		expectPresent string
	}{
		{name: "leaves excluded by policy", includeLeaves: false, expectPresent: "0"},
		{name: "approved leave counts when policy includes leaves", includeLeaves: true, expectPresent: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := AggregateAttendance([]AttendanceDay{approved, unapproved}, tt.includeLeaves)
			expected := decimal.RequireFromString(tt.expectPresent)
			assert.True(t, summary.PresentDays.Equal(expected),
				"expected %s present days, got %s", expected, summary.PresentDays)
			assert.Equal(t, 2, summary.LeaveDays)
		})
	}
}

func TestAggregateAttendanceViolations(t *testing.T) {
	late := dayWith(13, AttendancePresent)
	late.LateMinutes = 25
	early := dayWith(14, AttendanceHalfDay)
	early.EarlyMinutes = 40
	both := dayWith(15, AttendancePresent)
	both.LateMinutes = 10
	both.EarlyMinutes = 5

	summary := AggregateAttendance([]AttendanceDay{late, early, both}, false)
	assert.Len(t, summary.Violations, 3)
	assert.Equal(t, 25, summary.Violations[0].LateMinutes)
	assert.Equal(t, 40, summary.Violations[1].EarlyMinutes)
	assert.Equal(t, 10, summary.Violations[2].LateMinutes)
	assert.Equal(t, 5, summary.Violations[2].EarlyMinutes)
}
