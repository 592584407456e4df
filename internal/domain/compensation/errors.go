package compensation

import "errors"

var (
	ErrNoSalaryStructure = errors.New("salary structure has no components")
	ErrNoAttendanceData  = errors.New("no attendance records for month")
	ErrInvalidMonth      = errors.New("invalid year or month")
	ErrInvalidShiftHours = errors.New("shift hours must be positive for shift-based fines")
	ErrNegativeAmount    = errors.New("component amount must not be negative")
)
