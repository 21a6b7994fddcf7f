package assignment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Assignment - a quantity of an asset on charge to an employee for one
// calendar period. Creating one decrements the asset's stock; deleting one
// restores it.
type Assignment struct {
	ID         string
	AssetID    string
	EmployeeID string
	Period     string // "YYYY-MM"
	Quantity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	AssetName    *string
	AssetPrice   *decimal.Decimal
	EmployeeName *string
	EmployeeCode *string
}

// PeriodOf builds the canonical "YYYY-MM" period token from a year and a
// 1-based month. Payroll rows store month/year as integers; assignment rows
// group by this token. Both representations must stay consistent.
func PeriodOf(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
