package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrInvalidPeriod   = errors.New("invalid payroll period")
)
