package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/payroll"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, month, year, days_worked,
	base_pay, paid_leave_pay, ot_pay, gross_salary,
	pf_deduction, esi_deduction, advance_deduction, assets_deduction, total_deductions,
	net_pay, pf_percentage, esi_percentage, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.DaysWorked,
		&p.BasePay, &p.PaidLeavePay, &p.OTPay, &p.GrossSalary,
		&p.PFDeduction, &p.ESIDeduction, &p.AdvanceDeduction, &p.AssetsDeduction, &p.TotalDeductions,
		&p.NetPay, &p.PFPercentage, &p.ESIPercentage, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Upsert overwrites the whole row on conflict; at most one payroll record
// exists per (employee_id, month, year).
func (r *payrollRepository) Upsert(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			employee_id, month, year, days_worked,
			base_pay, paid_leave_pay, ot_pay, gross_salary,
			pf_deduction, esi_deduction, advance_deduction, assets_deduction, total_deductions,
			net_pay, pf_percentage, esi_percentage
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			days_worked = EXCLUDED.days_worked,
			base_pay = EXCLUDED.base_pay,
			paid_leave_pay = EXCLUDED.paid_leave_pay,
			ot_pay = EXCLUDED.ot_pay,
			gross_salary = EXCLUDED.gross_salary,
			pf_deduction = EXCLUDED.pf_deduction,
			esi_deduction = EXCLUDED.esi_deduction,
			advance_deduction = EXCLUDED.advance_deduction,
			assets_deduction = EXCLUDED.assets_deduction,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			pf_percentage = EXCLUDED.pf_percentage,
			esi_percentage = EXCLUDED.esi_percentage,
			updated_at = NOW()
		RETURNING ` + payrollColumns

	saved, err := scanPayroll(q.QueryRow(ctx, query,
		p.EmployeeID, p.Month, p.Year, p.DaysWorked,
		p.BasePay, p.PaidLeavePay, p.OTPay, p.GrossSalary,
		p.PFDeduction, p.ESIDeduction, p.AdvanceDeduction, p.AssetsDeduction, p.TotalDeductions,
		p.NetPay, p.PFPercentage, p.ESIPercentage,
	))
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return saved, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE employee_id = $1 AND month = $2 AND year = $3`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.year, p.days_worked,
			   p.base_pay, p.paid_leave_pay, p.ot_pay, p.gross_salary,
			   p.pf_deduction, p.esi_deduction, p.advance_deduction, p.assets_deduction, p.total_deductions,
			   p.net_pay, p.pf_percentage, p.esi_percentage, p.created_at, p.updated_at,
			   e.first_name || ' ' || e.last_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.DaysWorked,
			&p.BasePay, &p.PaidLeavePay, &p.OTPay, &p.GrossSalary,
			&p.PFDeduction, &p.ESIDeduction, &p.AdvanceDeduction, &p.AssetsDeduction, &p.TotalDeductions,
			&p.NetPay, &p.PFPercentage, &p.ESIPercentage, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, nil
}
