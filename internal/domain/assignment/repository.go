package assignment

import (
	"context"

	"github.com/shopspring/decimal"
)

// AssignmentRepository defines data access methods for asset assignments.
// Inventory side effects live in asset.AssetRepository; the service layer
// pairs the two inside one transaction.
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context) ([]Assignment, error)
	Update(ctx context.Context, a Assignment) error
	Delete(ctx context.Context, id string) error

	// TotalDeductionForPeriod sums quantity * unit_price over the employee's
	// assignments in the given period; zero when none match.
	TotalDeductionForPeriod(ctx context.Context, employeeID, period string) (decimal.Decimal, error)
}
