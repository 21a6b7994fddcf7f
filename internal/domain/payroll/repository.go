package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// Upsert creates or fully overwrites the record keyed by
	// (employee_id, month, year). No history of prior values is kept.
	Upsert(ctx context.Context, p Payroll) (Payroll, error)

	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Payroll, error)

	// ListByEmployee returns the employee's records ordered by year
	// descending, then month descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
}
