package payroll

import "errors"

var (
	ErrSalaryStructureNotFound = errors.New("no salary structure for employee")
	ErrResultNotFound          = errors.New("payroll result not found")
	ErrEmployeeNotFound        = errors.New("employee not found")
)
