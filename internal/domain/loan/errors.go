package loan

import "errors"

var (
	ErrInvalidPrincipal = errors.New("loan principal must be positive")
	ErrInvalidTenure    = errors.New("loan tenure must be a positive number of months")
	ErrInvalidRate      = errors.New("loan interest rate must not be negative")
)
