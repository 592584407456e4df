package organization

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrInvalidPolicy   = errors.New("invalid organization policy")
)
