package payroll

import "errors"

// Payroll domain errors
var (
	ErrRecordNotFound = errors.New("salary record not found")
	ErrUnknownField   = errors.New("unknown salary record field")
	ErrInvalidAmount  = errors.New("amount must be non-negative")
)
