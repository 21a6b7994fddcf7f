package response

import (
	"errors"
	"net/http"

	"github.com/sakthi-mills/hr-backend-go/internal/domain/asset"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/assignment"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/auth"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/employee"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/payroll"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee ID format", nil)
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Asset domain errors
	case errors.Is(err, asset.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, asset.ErrOutOfStock):
		Conflict(w, "Not enough quantity in inventory")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Asset assignment not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
