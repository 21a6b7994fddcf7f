package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/assignment"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO asset_assignments (asset_id, employee_id, period, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, asset_id, employee_id, period, quantity, created_at, updated_at
	`

	var created assignment.Assignment
	err := q.QueryRow(ctx, query, a.AssetID, a.EmployeeID, a.Period, a.Quantity).Scan(
		&created.ID, &created.AssetID, &created.EmployeeID, &created.Period,
		&created.Quantity, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return created, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.asset_id, a.employee_id, a.period, a.quantity, a.created_at, a.updated_at,
			   s.name, s.unit_price,
			   e.first_name || ' ' || e.last_name, e.employee_code
		FROM asset_assignments a
		JOIN assets s ON s.id = a.asset_id
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.AssetID, &a.EmployeeID, &a.Period, &a.Quantity, &a.CreatedAt, &a.UpdatedAt,
		&a.AssetName, &a.AssetPrice, &a.EmployeeName, &a.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

func (r *assignmentRepository) List(ctx context.Context) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.asset_id, a.employee_id, a.period, a.quantity, a.created_at, a.updated_at,
			   s.name, s.unit_price,
			   e.first_name || ' ' || e.last_name, e.employee_code
		FROM asset_assignments a
		JOIN assets s ON s.id = a.asset_id
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.period DESC, a.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(
			&a.ID, &a.AssetID, &a.EmployeeID, &a.Period, &a.Quantity, &a.CreatedAt, &a.UpdatedAt,
			&a.AssetName, &a.AssetPrice, &a.EmployeeName, &a.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *assignmentRepository) Update(ctx context.Context, a assignment.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE asset_assignments
		SET asset_id = $2, employee_id = $3, period = $4, quantity = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, a.ID, a.AssetID, a.EmployeeID, a.Period, a.Quantity).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	return nil
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM asset_assignments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

func (r *assignmentRepository) TotalDeductionForPeriod(ctx context.Context, employeeID, period string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(a.quantity * s.unit_price), 0)
		FROM asset_assignments a
		JOIN assets s ON s.id = a.asset_id
		WHERE a.employee_id = $1 AND a.period = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, period).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum asset deductions: %w", err)
	}

	return total, nil
}
