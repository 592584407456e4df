package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeInput carries everything one employee-month computation reads. The
// engine is a pure function of this input: no I/O, no shared state, no clock.
type ComputeInput struct {
	Year       int
	Month      time.Month
	Policy     OrganizationPolicy
	Structure  SalaryStructure
	Attendance []AttendanceDay
	Holidays   []Holiday
}

// ComputePayroll runs the full pipeline for one employee-month: working-days
// summary, attendance aggregation, salary proration, and fine aggregation.
// Identical inputs always yield identical outputs, which is what makes batch
// re-runs and audits safe.
func ComputePayroll(in ComputeInput) (PayrollComputationResult, error) {
	summary, err := CalculateWorkingDays(in.Year, in.Month, in.Policy.WeeklyOff, in.Holidays)
	if err != nil {
		return PayrollComputationResult{}, err
	}

	if len(in.Attendance) == 0 {
		return PayrollComputationResult{}, ErrNoAttendanceData
	}
	attendance := AggregateAttendance(in.Attendance, in.Policy.IncludeLeaves)

	proration, err := Prorate(in.Structure, summary, attendance.PresentDays)
	if err != nil {
		return PayrollComputationResult{}, err
	}

	result := PayrollComputationResult{
		Year:       in.Year,
		Month:      in.Month,
		Summary:    summary,
		Attendance: attendance,
		Proration:  proration,
		FineTotal:  decimal.Zero,
		NetPayable: proration.ProratedNet,
		Warnings:   append([]string(nil), summary.Warnings...),
	}
	if proration.DegenerateMonth {
		result.Warnings = append(result.Warnings, WarningDegenerateMonth)
	}

	if in.Policy.Fine.Enabled && len(attendance.Violations) > 0 {
		base := in.Structure.GrossMonthly
		if in.Policy.Fine.Method == FineMethodRuleBased && in.Policy.Fine.SalaryBase == FineBaseProratedGross {
			base = proration.ProratedGross
		}
		fineTotal, err := MonthlyFine(in.Policy.Fine, DailyRate(base, summary.WorkingDays), attendance.Violations)
		if err != nil {
			return PayrollComputationResult{}, err
		}
		result.FineTotal = fineTotal
		if in.Policy.Fine.ApplyToPayroll {
			result.FineApplied = true
			result.NetPayable = proration.ProratedNet.Sub(fineTotal)
		}
	}

	return result, nil
}
