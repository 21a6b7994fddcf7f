package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/sakthi-mills/hr-backend-go/internal/domain/employee"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
}

type serviceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) Service {
	return &serviceImpl{db: db, employeeRepo: employeeRepo}
}

func (s *serviceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// Validate guarantees the format parses.
	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Role:         employee.Role(req.Role),
		Status:       employee.StatusActive,
		PasswordHash: string(hash),
		HireDate:     hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(e), nil
}

func (s *serviceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, mapToResponse(e))
	}
	return result, nil
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Name:         e.FullName(),
		Email:        e.Email,
		Phone:        e.Phone,
		Position:     e.Position,
		Role:         string(e.Role),
		Status:       string(e.Status),
		HireDate:     e.HireDate.Format("2006-01-02"),
	}
}
