package payroll

import (
	"context"

	"github.com/sakthi-mills/hr-backend-go/internal/domain/assignment"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/employee"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/payroll"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/validator"
)

type Service interface {
	Calculate(ctx context.Context, req payroll.CalculatePayrollRequest) (payroll.PayrollResponse, error)
	History(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error)
	AssetDeductionPreview(ctx context.Context, req payroll.DeductionPreviewRequest) (payroll.DeductionPreviewResponse, error)
}

type serviceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	assignmentRepo assignment.AssignmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	assignmentRepo assignment.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) Service {
	return &serviceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// Calculate computes the pay breakdown for one employee-period and persists
// it. Recalculating the same period fully overwrites the earlier record.
func (s *serviceImpl) Calculate(ctx context.Context, req payroll.CalculatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	period := assignment.PeriodOf(req.Year, req.Month)
	assetsDeduction, err := s.assignmentRepo.TotalDeductionForPeriod(ctx, req.EmployeeID, period)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	b := Compute(req.DaysWorked, req.PFPercentage, req.ESIPercentage, req.AdvanceDeduction, assetsDeduction)

	saved, err := s.payrollRepo.Upsert(ctx, payroll.Payroll{
		EmployeeID:       req.EmployeeID,
		Month:            req.Month,
		Year:             req.Year,
		DaysWorked:       b.DaysWorked,
		BasePay:          b.BasePay,
		PaidLeavePay:     b.PaidLeavePay,
		OTPay:            b.OTPay,
		GrossSalary:      b.GrossSalary,
		PFDeduction:      b.PFDeduction,
		ESIDeduction:     b.ESIDeduction,
		AdvanceDeduction: b.AdvanceDeduction,
		AssetsDeduction:  b.AssetsDeduction,
		TotalDeductions:  b.TotalDeductions,
		NetPay:           b.NetPay,
		PFPercentage:     req.PFPercentage,
		ESIPercentage:    req.ESIPercentage,
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	resp := mapToResponse(saved)
	resp.EmployeeName = emp.FullName()
	resp.EmployeeCode = emp.EmployeeCode
	return resp, nil
}

func (s *serviceImpl) History(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, employee.ErrInvalidEmployeeID
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		result = append(result, mapToResponse(p))
	}
	return result, nil
}

// AssetDeductionPreview exposes the assets-deduction figure on its own so a
// caller can see it before committing a full calculation.
func (s *serviceImpl) AssetDeductionPreview(ctx context.Context, req payroll.DeductionPreviewRequest) (payroll.DeductionPreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionPreviewResponse{}, err
	}

	period := assignment.PeriodOf(req.Year, req.Month)
	total, err := s.assignmentRepo.TotalDeductionForPeriod(ctx, req.EmployeeID, period)
	if err != nil {
		return payroll.DeductionPreviewResponse{}, err
	}

	return payroll.DeductionPreviewResponse{AssetsDeduction: total}, nil
}

func mapToResponse(p payroll.Payroll) payroll.PayrollResponse {
	employeeName := ""
	employeeCode := ""
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		employeeCode = *p.EmployeeCode
	}

	return payroll.PayrollResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     employeeName,
		EmployeeCode:     employeeCode,
		Month:            p.Month,
		Year:             p.Year,
		DaysWorked:       p.DaysWorked,
		BasePay:          p.BasePay,
		PaidLeavePay:     p.PaidLeavePay,
		OTPay:            p.OTPay,
		GrossSalary:      p.GrossSalary,
		PFDeduction:      p.PFDeduction,
		ESIDeduction:     p.ESIDeduction,
		AdvanceDeduction: p.AdvanceDeduction,
		AssetsDeduction:  p.AssetsDeduction,
		TotalDeductions:  p.TotalDeductions,
		NetPay:           p.NetPay,
		PFPercentage:     p.PFPercentage,
		ESIPercentage:    p.ESIPercentage,
	}
}
