package compensation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func januaryAttendance(t *testing.T, presentDays int, violations map[int]Violation) []AttendanceDay {
	t.Helper()
	policy := WeeklyOffPolicy{Kind: WeeklyOffStandard}
	weekends, err := WeekendDates(2025, time.January, policy)
	require.NoError(t, err)

	var days []AttendanceDay
	marked := 0
	for day := 1; day <= 31; day++ {
		if weekends[day] {
			continue
		}
		record := AttendanceDay{
			Date:   time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC),
			Status: AttendanceAbsent,
		}
		if marked < presentDays {
			record.Status = AttendancePresent
			marked++
		}
		if violation, ok := violations[day]; ok {
			record.LateMinutes = violation.LateMinutes
			record.EarlyMinutes = violation.EarlyMinutes
		}
		days = append(days, record)
	}
	return days
}

func TestComputePayrollFullMonth(t *testing.T) {
	input := ComputeInput{
		Year:  2025,
		Month: time.January,
		Policy: OrganizationPolicy{
			WeeklyOff: WeeklyOffPolicy{Kind: WeeklyOffStandard},
		},
		Structure:  standardStructure(t),
		Attendance: januaryAttendance(t, 18, nil),
	}

	result, err := ComputePayroll(input)
	require.NoError(t, err)

	assert.Equal(t, 23, result.Summary.WorkingDays)
	assert.True(t, result.Attendance.PresentDays.Equal(decimal.NewFromInt(18)))
	assert.True(t, result.Proration.ProratedGross.Equal(decimal.RequireFromString("23478.26")),
		"expected 23478.26, got %s", result.Proration.ProratedGross)
	assert.True(t, result.FineTotal.IsZero())
	assert.True(t, result.NetPayable.Equal(result.Proration.ProratedNet))
	assert.Empty(t, result.Warnings)
}

func TestComputePayrollDeterministic(t *testing.T) {
	input := ComputeInput{
		Year:       2025,
		Month:      time.January,
		Policy:     OrganizationPolicy{WeeklyOff: WeeklyOffPolicy{Kind: WeeklyOffStandard}},
		Structure:  standardStructure(t),
		Attendance: januaryAttendance(t, 18, nil),
	}

	first, err := ComputePayroll(input)
	require.NoError(t, err)
	second, err := ComputePayroll(input)
	require.NoError(t, err)
	assert.True(t, first.NetPayable.Equal(second.NetPayable))
	assert.True(t, first.Proration.AttendanceRatio.Equal(second.Proration.AttendanceRatio))
}

func TestComputePayrollAppliesFines(t *testing.T) {
	// Shift-based fines derive the daily rate from the monthly gross, not
	// the prorated gross.
	input := ComputeInput{
		Year:  2025,
		Month: time.January,
		Policy: OrganizationPolicy{
			WeeklyOff: WeeklyOffPolicy{Kind: WeeklyOffStandard},
			Fine: FinePolicy{
				Enabled:        true,
				ApplyToPayroll: true,
				Method:         FineMethodShiftBased,
				ShiftHours:     decimal.NewFromInt(8),
			},
		},
		Structure:  standardStructure(t),
		Attendance: januaryAttendance(t, 18, map[int]Violation{2: {LateMinutes: 48}}),
	}

	result, err := ComputePayroll(input)
	require.NoError(t, err)

	// Daily rate 30000/23, hourly over 8h, 48 minutes late.
	expected := decimal.NewFromInt(30000).
		Div(decimal.NewFromInt(23)).
		Div(decimal.NewFromInt(8)).
		Mul(decimal.NewFromInt(48)).
		Div(decimal.NewFromInt(60)).
		Round(CurrencyPrecision)
	assert.True(t, result.FineTotal.Equal(expected), "expected fine %s, got %s", expected, result.FineTotal)
	assert.True(t, result.FineApplied)
	assert.True(t, result.NetPayable.Equal(result.Proration.ProratedNet.Sub(expected)))
}

func TestComputePayrollReportsFineWithoutDeducting(t *testing.T) {
	policy := ruleBasedPolicy()
	policy.ApplyToPayroll = false
	input := ComputeInput{
		Year:  2025,
		Month: time.January,
		Policy: OrganizationPolicy{
			WeeklyOff: WeeklyOffPolicy{Kind: WeeklyOffStandard},
			Fine:      policy,
		},
		Structure:  standardStructure(t),
		Attendance: januaryAttendance(t, 20, map[int]Violation{6: {LateMinutes: 15}}),
	}

	result, err := ComputePayroll(input)
	require.NoError(t, err)
	assert.True(t, result.FineTotal.IsPositive())
	assert.False(t, result.FineApplied)
	assert.True(t, result.NetPayable.Equal(result.Proration.ProratedNet))
}

func TestComputePayrollNoAttendanceData(t *testing.T) {
	input := ComputeInput{
		Year:      2025,
		Month:     time.January,
		Policy:    OrganizationPolicy{WeeklyOff: WeeklyOffPolicy{Kind: WeeklyOffStandard}},
		Structure: standardStructure(t),
	}
	_, err := ComputePayroll(input)
	assert.ErrorIs(t, err, ErrNoAttendanceData)
}

func TestComputePayrollDegenerateMonthFlagged(t *testing.T) {
	allOff := WeeklyOffPolicy{
		Kind: WeeklyOffCustomDays,
		CustomDays: []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
	}
	input := ComputeInput{
		Year:      2025,
		Month:     time.January,
		Policy:    OrganizationPolicy{WeeklyOff: allOff},
		Structure: standardStructure(t),
		Attendance: []AttendanceDay{
			{Date: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), Status: AttendanceNotMarked},
		},
	}

	result, err := ComputePayroll(input)
	require.NoError(t, err)
	assert.True(t, result.Proration.DegenerateMonth)
	assert.True(t, result.NetPayable.IsZero())
	assert.Contains(t, result.Warnings, WarningDegenerateMonth)
}
