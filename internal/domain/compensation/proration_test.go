package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardStructure(t *testing.T) SalaryStructure {
	t.Helper()
	structure, err := NewSalaryStructure([]SalaryComponent{
		{Name: "Basic", Kind: ComponentKindEarning, MonthlyAmount: decimal.NewFromInt(20000)},
		{Name: "HRA", Kind: ComponentKindEarning, MonthlyAmount: decimal.NewFromInt(10000)},
		{Name: "Provident Fund", Kind: ComponentKindDeduction, MonthlyAmount: decimal.NewFromInt(1800)},
	})
	require.NoError(t, err)
	return structure
}

func TestNewSalaryStructureTotals(t *testing.T) {
	structure := standardStructure(t)
	assert.True(t, structure.GrossMonthly.Equal(decimal.NewFromInt(30000)))
	assert.True(t, structure.NetMonthly.Equal(decimal.NewFromInt(28200)))
}

func TestNewSalaryStructureRejectsNegativeAmount(t *testing.T) {
	_, err := NewSalaryStructure([]SalaryComponent{
		{Name: "Basic", Kind: ComponentKindEarning, MonthlyAmount: decimal.NewFromInt(-1)},
	})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestProrateEighteenOfTwentyThree(t *testing.T) {
	structure := standardStructure(t)
	summary := WorkingDaysSummary{TotalDays: 31, WeekendCount: 8, WorkingDays: 23}

	result, err := Prorate(structure, summary, decimal.NewFromInt(18))
	require.NoError(t, err)

	assert.True(t, result.ProratedGross.Equal(decimal.RequireFromString("23478.26")),
		"expected prorated gross 23478.26, got %s", result.ProratedGross)
	assert.False(t, result.DegenerateMonth)

	ratio, _ := result.AttendanceRatio.Float64()
	assert.InDelta(t, 18.0/23.0, ratio, 1e-9)
}

func TestProrateBreakdownSumsToTotals(t *testing.T) {
	structure := standardStructure(t)
	summary := WorkingDaysSummary{TotalDays: 31, WeekendCount: 8, WorkingDays: 23}

	for presentDays := 0; presentDays <= 23; presentDays++ {
		result, err := Prorate(structure, summary, decimal.NewFromInt(int64(presentDays)))
		require.NoError(t, err)

		earnings := decimal.Zero
		deductions := decimal.Zero
		for _, component := range result.Components {
			switch component.Kind {
			case ComponentKindEarning:
				earnings = earnings.Add(component.ProratedAmount)
			case ComponentKindDeduction:
				deductions = deductions.Add(component.ProratedAmount)
			}
		}
		assert.True(t, earnings.Equal(result.ProratedGross),
			"presentDays=%d: component earnings %s != gross %s", presentDays, earnings, result.ProratedGross)
		assert.True(t, earnings.Sub(deductions).Equal(result.ProratedNet),
			"presentDays=%d: breakdown does not sum to net", presentDays)
	}
}

func TestProrateClampsRatioToOne(t *testing.T) {
	structure := standardStructure(t)
	summary := WorkingDaysSummary{TotalDays: 31, WeekendCount: 8, WorkingDays: 23}

	result, err := Prorate(structure, summary, decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.True(t, result.AttendanceRatio.Equal(decimal.NewFromInt(1)))
	assert.True(t, result.ProratedGross.Equal(decimal.NewFromInt(30000)))
}

func TestProrateDegenerateMonth(t *testing.T) {
	structure := standardStructure(t)
	summary := WorkingDaysSummary{TotalDays: 31, WeekendCount: 31, WorkingDays: 0}

	result, err := Prorate(structure, summary, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, result.DegenerateMonth)
	assert.True(t, result.AttendanceRatio.IsZero())
	assert.True(t, result.ProratedGross.IsZero())
	assert.True(t, result.ProratedNet.IsZero())
	assert.Len(t, result.Components, 3)
}

func TestProrateEmptyStructure(t *testing.T) {
	summary := WorkingDaysSummary{TotalDays: 31, WeekendCount: 8, WorkingDays: 23}
	_, err := Prorate(SalaryStructure{}, summary, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrNoSalaryStructure)
}

func TestDailyRate(t *testing.T) {
	rate := DailyRate(decimal.NewFromInt(23000), 23)
	assert.True(t, rate.Equal(decimal.NewFromInt(1000)))
	assert.True(t, DailyRate(decimal.NewFromInt(23000), 0).IsZero())
}
