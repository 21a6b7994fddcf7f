package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll - per-employee, per-period pay breakdown. At most one row exists
// per (employee, month, year); recalculating fully overwrites it.
type Payroll struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int
	DaysWorked int

	// Earnings
	BasePay      decimal.Decimal
	PaidLeavePay decimal.Decimal
	OTPay        decimal.Decimal
	GrossSalary  decimal.Decimal

	// Deductions
	PFDeduction      decimal.Decimal
	ESIDeduction     decimal.Decimal
	AdvanceDeduction decimal.Decimal
	AssetsDeduction  decimal.Decimal
	TotalDeductions  decimal.Decimal

	// Final pay
	NetPay decimal.Decimal

	// Inputs stored for later display
	PFPercentage  decimal.Decimal
	ESIPercentage decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
