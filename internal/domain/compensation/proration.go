package compensation

import "github.com/shopspring/decimal"

// CurrencyPrecision is the fixed scale every monetary result is rounded to.
const CurrencyPrecision = 2

var decimalOne = decimal.NewFromInt(1)

// NewSalaryStructure builds a structure from its components, deriving the
// gross and net monthly figures. Structures are replaced wholesale on
// revision; there is no partial component mutation.
func NewSalaryStructure(components []SalaryComponent) (SalaryStructure, error) {
	structure := SalaryStructure{
		Components:   components,
		GrossMonthly: decimal.Zero,
		NetMonthly:   decimal.Zero,
	}
	deductions := decimal.Zero
	for _, component := range components {
		if component.MonthlyAmount.IsNegative() {
			return SalaryStructure{}, ErrNegativeAmount
		}
		switch component.Kind {
		case ComponentKindEarning:
			structure.GrossMonthly = structure.GrossMonthly.Add(component.MonthlyAmount)
		case ComponentKindDeduction:
			deductions = deductions.Add(component.MonthlyAmount)
		}
	}
	structure.NetMonthly = structure.GrossMonthly.Sub(deductions)
	return structure, nil
}

// Prorate scales every component of the structure by the attendance ratio.
// Each component is rounded independently so the reported breakdown always
// sums exactly to the reported totals.
func Prorate(structure SalaryStructure, summary WorkingDaysSummary, presentDays decimal.Decimal) (ProrationResult, error) {
	if len(structure.Components) == 0 {
		return ProrationResult{}, ErrNoSalaryStructure
	}

	result := ProrationResult{
		AttendanceRatio: decimal.Zero,
		ProratedGross:   decimal.Zero,
		ProratedNet:     decimal.Zero,
	}

	if summary.WorkingDays == 0 {
		result.DegenerateMonth = true
		for _, component := range structure.Components {
			result.Components = append(result.Components, ComponentResult{
				Name:           component.Name,
				Kind:           component.Kind,
				MonthlyAmount:  component.MonthlyAmount,
				ProratedAmount: decimal.Zero,
			})
		}
		return result, nil
	}

	ratio := presentDays.Div(decimal.NewFromInt(int64(summary.WorkingDays)))
	if ratio.GreaterThan(decimalOne) {
		ratio = decimalOne
	}
	result.AttendanceRatio = ratio

	deductions := decimal.Zero
	for _, component := range structure.Components {
		prorated := component.MonthlyAmount.Mul(ratio).Round(CurrencyPrecision)
		result.Components = append(result.Components, ComponentResult{
			Name:           component.Name,
			Kind:           component.Kind,
			MonthlyAmount:  component.MonthlyAmount,
			ProratedAmount: prorated,
		})
		switch component.Kind {
		case ComponentKindEarning:
			result.ProratedGross = result.ProratedGross.Add(prorated)
		case ComponentKindDeduction:
			deductions = deductions.Add(prorated)
		}
	}
	result.ProratedNet = result.ProratedGross.Sub(deductions)
	return result, nil
}

// DailyRate derives the per-working-day salary used by the fine engine.
// A degenerate month yields zero rather than dividing by zero.
func DailyRate(gross decimal.Decimal, workingDays int) decimal.Decimal {
	if workingDays <= 0 {
		return decimal.Zero
	}
	return gross.Div(decimal.NewFromInt(int64(workingDays)))
}
