package asset

import (
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAssetRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (r *CreateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.UnitPrice.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "must be greater than zero"})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssetRequest struct {
	ID        string          `json:"-"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (r *UpdateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid uuid"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.UnitPrice.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "must be greater than zero"})
	}
	// Unlike create, an edit may zero out remaining stock.
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssetResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	QuantityOnHand int             `json:"quantity_on_hand"`
}
