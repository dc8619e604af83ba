package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/transaction"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-backend-go/internal/service/unique"
)

type employeeServiceImpl struct {
	txManager      transaction.Manager
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	txManager transaction.Manager,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &employeeServiceImpl{
		txManager:      txManager,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, req *paging.Request) (paging.Result[employee.EmployeeResponse], error) {
	p := req.OrDefault()

	employees, total, err := s.employeeRepo.List(ctx, p)
	if err != nil {
		return paging.Result[employee.EmployeeResponse]{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return paging.NewResult(p, employees, total, employee.ToResponse), nil
}

// GetByID implements employee.EmployeeService.
func (s *employeeServiceImpl) GetByID(ctx context.Context, id int64) (*employee.EmployeeResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	entity, err := req.Normalize()
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created *employee.EmployeeResponse
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureDepartment(ctx, entity.DepartmentID); err != nil {
			return err
		}
		if err := unique.Ensure(ctx, entity.EmpNo, s.employeeRepo.ExistsByEmpNo, employee.EmpNoExistsError); err != nil {
			return err
		}

		saved, err := s.employeeRepo.Create(ctx, entity)
		if err != nil {
			return err
		}

		// Re-read so the response carries the joined department name.
		created, err = s.load(ctx, saved.ID)
		if err != nil {
			return err
		}
		if created == nil {
			return fmt.Errorf("employee %d vanished after insert", saved.ID)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return *created, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return nil, err
	}

	var updated *employee.EmployeeResponse
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil
			}
			return err
		}

		incoming, err := req.Normalize()
		if err != nil {
			return err
		}

		if incoming.DepartmentID != current.DepartmentID {
			if err := s.ensureDepartment(ctx, incoming.DepartmentID); err != nil {
				return err
			}
		}

		next := current.Employee
		next.FullName = incoming.FullName
		next.Email = incoming.Email
		next.HireDate = incoming.HireDate
		next.DepartmentID = incoming.DepartmentID

		if _, err := s.employeeRepo.Update(ctx, next); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil
			}
			return err
		}

		updated, err = s.load(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return false, err
	}

	err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *employeeServiceImpl) load(ctx context.Context, id int64) (*employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := employee.ToResponse(found)
	return &resp, nil
}

func (s *employeeServiceImpl) ensureDepartment(ctx context.Context, departmentID int64) error {
	_, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return employee.DepartmentNotFoundError(departmentID)
		}
		return fmt.Errorf("failed to resolve department %d: %w", departmentID, err)
	}
	return nil
}
