package payroll

const (
	EmployeeStatusActive = "active"

	RunStatusComputed = "computed"
	RunStatusSkipped  = "skipped"
	RunStatusFailed   = "failed"
)
