package assignment

import (
	"context"
	"errors"

	"github.com/sakthi-mills/hr-backend-go/internal/domain/asset"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/assignment"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/employee"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
	"github.com/sakthi-mills/hr-backend-go/internal/repository/postgresql"
)

// Service is the assignment registry. It is the only writer of the asset
// inventory ledger: every create, edit and delete pairs its assignment write
// with exactly one inventory adjustment inside a single transaction.
type Service interface {
	Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error)
	Edit(ctx context.Context, req assignment.UpdateAssignmentRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) (assignment.ListResponse, error)
}

type serviceImpl struct {
	db             *database.DB
	assignmentRepo assignment.AssignmentRepository
	assetRepo      asset.AssetRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAssignmentService(
	db *database.DB,
	assignmentRepo assignment.AssignmentRepository,
	assetRepo asset.AssetRepository,
	employeeRepo employee.EmployeeRepository,
) Service {
	return &serviceImpl{
		db:             db,
		assignmentRepo: assignmentRepo,
		assetRepo:      assetRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	var created assignment.Assignment
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID); err != nil {
			return err
		}

		// Decrement before insert; a failed insert rolls the decrement back.
		if err := s.assetRepo.Decrement(txCtx, req.AssetID, req.Quantity); err != nil {
			return err
		}

		var err error
		created, err = s.assignmentRepo.Create(txCtx, assignment.Assignment{
			AssetID:    req.AssetID,
			EmployeeID: req.EmployeeID,
			Period:     req.Period,
			Quantity:   req.Quantity,
		})
		return err
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	// Reload outside the tx to pick up the joined asset/employee fields.
	resolved, err := s.assignmentRepo.GetByID(ctx, created.ID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return mapToResponse(resolved), nil
}

// Edit re-deltas inventory by oldQuantity - newQuantity and overwrites all
// fields. A quantity of 0 is the implicit-delete contract: the record is
// removed and its full quantity returned to stock, ignoring the other fields.
//
// The delta is always applied to the assignment's original asset, even when
// the edit points the record at a different asset. That matches the observed
// behavior this system replaces; moving stock between the old and new asset
// would change charge totals and needs product sign-off first.
func (s *serviceImpl) Edit(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.Quantity == 0 {
		return s.Delete(ctx, req.ID)
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.assignmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		// Positive delta frees stock, negative consumes it.
		delta := existing.Quantity - req.Quantity
		if err := s.assetRepo.AdjustByDelta(txCtx, existing.AssetID, delta); err != nil {
			return err
		}

		return s.assignmentRepo.Update(txCtx, assignment.Assignment{
			ID:         req.ID,
			AssetID:    req.AssetID,
			EmployeeID: req.EmployeeID,
			Period:     req.Period,
			Quantity:   req.Quantity,
		})
	})
}

// Delete returns the assignment's full quantity to the referenced asset and
// removes the record. Deleting an id that no longer exists is a no-op.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.assignmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.assetRepo.Increment(txCtx, existing.AssetID, existing.Quantity); err != nil {
			return err
		}

		return s.assignmentRepo.Delete(txCtx, id)
	})
	if errors.Is(err, assignment.ErrAssignmentNotFound) {
		return nil
	}
	return err
}

func (s *serviceImpl) List(ctx context.Context) (assignment.ListResponse, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return assignment.ListResponse{}, err
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return assignment.ListResponse{}, err
	}
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return assignment.ListResponse{}, err
	}

	resp := assignment.ListResponse{
		Assets:      make([]asset.AssetResponse, 0, len(assets)),
		Employees:   make([]employee.EmployeeResponse, 0, len(employees)),
		Assignments: make([]assignment.AssignmentResponse, 0, len(assignments)),
	}
	for _, a := range assets {
		resp.Assets = append(resp.Assets, asset.AssetResponse{
			ID:             a.ID,
			Name:           a.Name,
			UnitPrice:      a.UnitPrice,
			QuantityOnHand: a.QuantityOnHand,
		})
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employee.EmployeeResponse{
			ID:           e.ID,
			EmployeeCode: e.EmployeeCode,
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			Name:         e.FullName(),
			Email:        e.Email,
			Position:     e.Position,
			Role:         string(e.Role),
			Status:       string(e.Status),
			HireDate:     e.HireDate.Format("2006-01-02"),
		})
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, mapToResponse(a))
	}

	return resp, nil
}

func mapToResponse(a assignment.Assignment) assignment.AssignmentResponse {
	assetName := ""
	employeeName := ""
	employeeCode := ""
	if a.AssetName != nil {
		assetName = *a.AssetName
	}
	if a.EmployeeName != nil {
		employeeName = *a.EmployeeName
	}
	if a.EmployeeCode != nil {
		employeeCode = *a.EmployeeCode
	}

	return assignment.AssignmentResponse{
		ID:           a.ID,
		AssetID:      a.AssetID,
		AssetName:    assetName,
		AssetPrice:   a.AssetPrice,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		EmployeeCode: employeeCode,
		Period:       a.Period,
		Quantity:     a.Quantity,
	}
}
