package compensation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleBasedPolicy() FinePolicy {
	return FinePolicy{
		Enabled:        true,
		ApplyToPayroll: true,
		Method:         FineMethodRuleBased,
		Rules: []FineRule{
			{Multiplier: FineMultiplierTwoX, AppliesTo: FineAppliesLateArrival},
			{Multiplier: FineMultiplierFixed, FixedAmount: decimal.NewFromInt(50), AppliesTo: FineAppliesBoth},
		},
	}
}

func TestDailyFineRuleBasedFirstMatchWins(t *testing.T) {
	dailySalary := decimal.NewFromInt(1000)
	tests := []struct {
		name      string
		violation Violation
		expected  string
	}{
		{name: "late only hits the 2x rule, not the fixed fallback", violation: Violation{LateMinutes: 20}, expected: "2000"},
		{name: "early only falls through to the fixed rule", violation: Violation{EarlyMinutes: 15}, expected: "50"},
		{name: "late and early evaluated independently and summed", violation: Violation{LateMinutes: 20, EarlyMinutes: 15}, expected: "2050"},
		{name: "no violation yields no fine", violation: Violation{}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fine, err := DailyFine(ruleBasedPolicy(), dailySalary, tt.violation)
			require.NoError(t, err)
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, fine.Equal(expected), "expected fine %s, got %s", expected, fine)
		})
	}
}

func TestDailyFineRuleMultipliers(t *testing.T) {
	dailySalary := decimal.NewFromInt(1000)
	tests := []struct {
		multiplier string
		expected   string
	}{
		{multiplier: FineMultiplierOneX, expected: "1000"},
		{multiplier: FineMultiplierTwoX, expected: "2000"},
		{multiplier: FineMultiplierThreeX, expected: "3000"},
		{multiplier: FineMultiplierHalfDay, expected: "500"},
		{multiplier: FineMultiplierFullDay, expected: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.multiplier, func(t *testing.T) {
			policy := FinePolicy{
				Enabled: true,
				Method:  FineMethodRuleBased,
				Rules:   []FineRule{{Multiplier: tt.multiplier, AppliesTo: FineAppliesBoth}},
			}
			fine, err := DailyFine(policy, dailySalary, Violation{LateMinutes: 5})
			require.NoError(t, err)
			assert.True(t, fine.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, fine)
		})
	}
}

func TestDailyFineShiftBased(t *testing.T) {
	policy := FinePolicy{
		Enabled:    true,
		Method:     FineMethodShiftBased,
		ShiftHours: decimal.NewFromInt(8),
	}
	// 960 / 8h = 120 per hour; 30 late minutes = 60.
	fine, err := DailyFine(policy, decimal.NewFromInt(960), Violation{LateMinutes: 30})
	require.NoError(t, err)
	assert.True(t, fine.Equal(decimal.NewFromInt(60)), "expected 60, got %s", fine)
}

func TestDailyFineShiftBasedEarlyExitIsConfigurable(t *testing.T) {
	policy := FinePolicy{
		Enabled:    true,
		Method:     FineMethodShiftBased,
		ShiftHours: decimal.NewFromInt(8),
	}
	violation := Violation{EarlyMinutes: 60}

	fine, err := DailyFine(policy, decimal.NewFromInt(960), violation)
	require.NoError(t, err)
	assert.True(t, fine.IsZero(), "early exit must not be fined unless configured")

	policy.FineEarlyExit = true
	fine, err = DailyFine(policy, decimal.NewFromInt(960), violation)
	require.NoError(t, err)
	assert.True(t, fine.Equal(decimal.NewFromInt(120)), "expected 120, got %s", fine)
}

func TestDailyFineShiftBasedRejectsZeroShiftHours(t *testing.T) {
	policy := FinePolicy{Enabled: true, Method: FineMethodShiftBased}
	_, err := DailyFine(policy, decimal.NewFromInt(960), Violation{LateMinutes: 10})
	assert.ErrorIs(t, err, ErrInvalidShiftHours)
}

func TestDailyFineDisabledPolicy(t *testing.T) {
	policy := ruleBasedPolicy()
	policy.Enabled = false
	fine, err := DailyFine(policy, decimal.NewFromInt(1000), Violation{LateMinutes: 90})
	require.NoError(t, err)
	assert.True(t, fine.IsZero())
}

func TestMonthlyFineSumsDailyFines(t *testing.T) {
	violations := []Violation{
		{Date: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), LateMinutes: 20},
		{Date: time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC), EarlyMinutes: 10},
	}
	total, err := MonthlyFine(ruleBasedPolicy(), decimal.NewFromInt(1000), violations)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(2050)), "expected 2050, got %s", total)
}
