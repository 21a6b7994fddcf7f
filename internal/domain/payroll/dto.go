package payroll

import (
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculatePayrollRequest struct {
	EmployeeID       string          `json:"employee_id"`
	DaysWorked       int             `json:"days_worked"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	PFPercentage     decimal.Decimal `json:"pf_percentage"`
	ESIPercentage    decimal.Decimal `json:"esi_percentage"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
}

func (r *CalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid uuid"})
	}
	if r.DaysWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must not be negative"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}
	if r.PFPercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pf_percentage", Message: "must be non-negative"})
	}
	if r.ESIPercentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "esi_percentage", Message: "must be non-negative"})
	}
	if r.AdvanceDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advance_deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionPreviewRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *DeductionPreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid uuid"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	EmployeeCode     string          `json:"employee_code,omitempty"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	DaysWorked       int             `json:"days_worked"`
	BasePay          decimal.Decimal `json:"base_pay"`
	PaidLeavePay     decimal.Decimal `json:"paid_leave_pay"`
	OTPay            decimal.Decimal `json:"ot_pay"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	PFDeduction      decimal.Decimal `json:"pf_deduction"`
	ESIDeduction     decimal.Decimal `json:"esi_deduction"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	AssetsDeduction  decimal.Decimal `json:"assets_deduction"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`
	PFPercentage     decimal.Decimal `json:"pf_percentage"`
	ESIPercentage    decimal.Decimal `json:"esi_percentage"`
}

type DeductionPreviewResponse struct {
	AssetsDeduction decimal.Decimal `json:"assets_deduction"`
}
