package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalaryComponent struct {
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`
}

type SalaryStructure struct {
	Components   []SalaryComponent `json:"components"`
	GrossMonthly decimal.Decimal   `json:"grossMonthly"`
	NetMonthly   decimal.Decimal   `json:"netMonthly"`
}

type WeeklyOffPolicy struct {
	Kind           string         `json:"kind"`
	SaturdayParity string         `json:"saturdayParity,omitempty"`
	CustomDays     []time.Weekday `json:"customDays,omitempty"`
}

type Holiday struct {
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type WorkingDaysSummary struct {
	TotalDays    int      `json:"totalDays"`
	WeekendCount int      `json:"weekendCount"`
	HolidayCount int      `json:"holidayCount"`
	WorkingDays  int      `json:"workingDays"`
	Warnings     []string `json:"warnings,omitempty"`
}

type AttendanceDay struct {
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	LeaveApproved bool       `json:"leaveApproved,omitempty"`
	PunchIn       *time.Time `json:"punchIn,omitempty"`
	PunchOut      *time.Time `json:"punchOut,omitempty"`
	LateMinutes   int        `json:"lateMinutes,omitempty"`
	EarlyMinutes  int        `json:"earlyMinutes,omitempty"`
}

type Violation struct {
	Date         time.Time `json:"date"`
	LateMinutes  int       `json:"lateMinutes"`
	EarlyMinutes int       `json:"earlyMinutes"`
}

type AttendanceSummary struct {
	PresentDays decimal.Decimal `json:"presentDays"`
	AbsentDays  int             `json:"absentDays"`
	HalfDays    int             `json:"halfDays"`
	LeaveDays   int             `json:"leaveDays"`
	Violations  []Violation     `json:"violations,omitempty"`
}

type FineRule struct {
	Multiplier  string          `json:"multiplier"`
	FixedAmount decimal.Decimal `json:"fixedAmount,omitempty"`
	AppliesTo   string          `json:"appliesTo"`
}

type FinePolicy struct {
	Enabled        bool            `json:"enabled"`
	ApplyToPayroll bool            `json:"applyToPayroll"`
	Method         string          `json:"method"`
	Rules          []FineRule      `json:"rules,omitempty"`
	ShiftHours     decimal.Decimal `json:"shiftHours,omitempty"`
	FineEarlyExit  bool            `json:"fineEarlyExit,omitempty"`
	SalaryBase     string          `json:"salaryBase,omitempty"`
}

type OrganizationPolicy struct {
	WeeklyOff     WeeklyOffPolicy `json:"weeklyOff"`
	Fine          FinePolicy      `json:"fine"`
	IncludeLeaves bool            `json:"includeLeaves"`
}

type ComponentResult struct {
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	MonthlyAmount  decimal.Decimal `json:"monthlyAmount"`
	ProratedAmount decimal.Decimal `json:"proratedAmount"`
}

type ProrationResult struct {
	AttendanceRatio decimal.Decimal   `json:"attendanceRatio"`
	ProratedGross   decimal.Decimal   `json:"proratedGross"`
	ProratedNet     decimal.Decimal   `json:"proratedNet"`
	Components      []ComponentResult `json:"components"`
	DegenerateMonth bool              `json:"degenerateMonth,omitempty"`
}

type PayrollComputationResult struct {
	Year        int                `json:"year"`
	Month       time.Month         `json:"month"`
	Summary     WorkingDaysSummary `json:"summary"`
	Attendance  AttendanceSummary  `json:"attendance"`
	Proration   ProrationResult    `json:"proration"`
	FineTotal   decimal.Decimal    `json:"fineTotal"`
	FineApplied bool               `json:"fineApplied"`
	NetPayable  decimal.Decimal    `json:"netPayable"`
	Warnings    []string           `json:"warnings,omitempty"`
}
