package assignment

import (
	"github.com/sakthi-mills/hr-backend-go/internal/domain/asset"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/employee"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAssignmentRequest struct {
	AssetID    string `json:"asset_id"`
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`
	Quantity   int    `json:"quantity"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.AssetID) {
		errs = append(errs, validator.ValidationError{Field: "asset_id", Message: "must be a valid uuid"})
	}
	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid uuid"})
	}
	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ID         string `json:"-"`
	AssetID    string `json:"asset_id"`
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`
	Quantity   int    `json:"quantity"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid uuid"})
	}

	// Quantity 0 means "return everything and remove the record"; the other
	// fields are ignored in that case.
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must not be negative"})
	}
	if r.Quantity > 0 {
		if !validator.IsValidUUID(r.AssetID) {
			errs = append(errs, validator.ValidationError{Field: "asset_id", Message: "must be a valid uuid"})
		}
		if !validator.IsValidUUID(r.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid uuid"})
		}
		if !validator.IsValidPeriod(r.Period) {
			errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID           string           `json:"id"`
	AssetID      string           `json:"asset_id"`
	AssetName    string           `json:"asset_name"`
	AssetPrice   *decimal.Decimal `json:"asset_price,omitempty"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	EmployeeCode string           `json:"employee_code,omitempty"`
	Period       string           `json:"period"`
	Quantity     int              `json:"quantity"`
}

// ListResponse mirrors the asset administration page payload: every asset,
// every employee and every assignment with its references resolved.
type ListResponse struct {
	Assets      []asset.AssetResponse       `json:"assets"`
	Employees   []employee.EmployeeResponse `json:"employees"`
	Assignments []AssignmentResponse        `json:"assignments"`
}
