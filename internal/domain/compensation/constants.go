package compensation

const (
	ComponentKindEarning   = "earning"
	ComponentKindDeduction = "deduction"

	WeeklyOffStandard        = "standard"
	WeeklyOffOddEvenSaturday = "odd_even_saturday"
	WeeklyOffCustomDays      = "custom_days"

	SaturdayParityOdd  = "odd"
	SaturdayParityEven = "even"

	AttendancePresent   = "present"
	AttendanceAbsent    = "absent"
	AttendanceHalfDay   = "half_day"
	AttendanceOnLeave   = "on_leave"
	AttendancePending   = "pending"
	AttendanceNotMarked = "not_marked"

	FineMethodShiftBased = "shift_based"
	FineMethodRuleBased  = "rule_based"

	FineMultiplierOneX    = "one_x_salary"
	FineMultiplierTwoX    = "two_x_salary"
	FineMultiplierThreeX  = "three_x_salary"
	FineMultiplierHalfDay = "half_day"
	FineMultiplierFullDay = "full_day"
	FineMultiplierFixed   = "fixed_amount"

	FineAppliesLateArrival = "late_arrival"
	FineAppliesEarlyExit   = "early_exit"
	FineAppliesBoth        = "both"

	FineBaseMonthlyGross  = "monthly_gross"
	FineBaseProratedGross = "prorated_gross"

	WarningNegativeWorkingDays = "negative_working_days"
	WarningDegenerateMonth     = "degenerate_month"
)
