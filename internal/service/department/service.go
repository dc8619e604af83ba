package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/transaction"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-backend-go/internal/service/unique"
)

type departmentServiceImpl struct {
	txManager      transaction.Manager
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(txManager transaction.Manager, departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &departmentServiceImpl{
		txManager:      txManager,
		departmentRepo: departmentRepo,
	}
}

func (s *departmentServiceImpl) List(ctx context.Context, req *paging.Request) (paging.Result[department.DepartmentResponse], error) {
	p := req.OrDefault()

	departments, total, err := s.departmentRepo.List(ctx, p)
	if err != nil {
		return paging.Result[department.DepartmentResponse]{}, fmt.Errorf("failed to list departments: %w", err)
	}

	return paging.NewResult(p, departments, total, department.ToResponse), nil
}

func (s *departmentServiceImpl) GetByID(ctx context.Context, id int64) (*department.DepartmentResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return nil, err
	}

	entity, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := department.ToResponse(entity)
	return &resp, nil
}

func (s *departmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	entity, err := req.Normalize()
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	var created department.Department
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := unique.Ensure(ctx, entity.Name, s.departmentRepo.ExistsByName, department.NameExistsError); err != nil {
			return err
		}
		created, err = s.departmentRepo.Create(ctx, entity)
		return err
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(created), nil
}

func (s *departmentServiceImpl) Update(ctx context.Context, id int64, req department.UpdateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return nil, err
	}

	var updated *department.DepartmentResponse
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.departmentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return nil
			}
			return err
		}

		incoming, err := req.Normalize()
		if err != nil {
			return err
		}

		// Renaming to a different casing of the same name is not a collision.
		if unique.Changed(current.Name, incoming.Name) {
			if err := unique.Ensure(ctx, incoming.Name, s.departmentRepo.ExistsByName, department.NameExistsError); err != nil {
				return err
			}
		}

		current.Name = incoming.Name
		saved, err := s.departmentRepo.Update(ctx, current)
		if err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return nil
			}
			return err
		}

		resp := department.ToResponse(saved)
		updated = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *departmentServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return false, err
	}

	err := s.departmentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
