package memory

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

type employeeRepository struct {
	store *Store
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.departments[e.DepartmentID]; !ok {
		return employee.Employee{}, employee.DepartmentNotFoundError(e.DepartmentID)
	}
	if s.empNoTaken(e.EmpNo, 0) {
		return employee.Employee{}, employee.EmpNoExistsError(e.EmpNo)
	}

	s.nextEmployeeID++
	e.ID = s.nextEmployeeID
	e.CreatedAt = s.now()
	e.UpdatedAt = e.CreatedAt
	s.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.EmployeeWithDepartment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return employee.EmployeeWithDepartment{}, employee.ErrEmployeeNotFound
	}
	return s.withDepartment(e), nil
}

func (r *employeeRepository) ExistsByEmpNo(ctx context.Context, empNo string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.empNoTaken(empNo, 0), nil
}

func (r *employeeRepository) List(ctx context.Context, req paging.Request) ([]employee.EmployeeWithDepartment, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]employee.EmployeeWithDepartment, 0, len(s.employees))
	for _, e := range s.employees {
		if req.HasSearch() &&
			!containsFold(e.FullName, req.SearchTerm) &&
			!containsFold(e.EmpNo, req.SearchTerm) &&
			!containsFold(e.Email, req.SearchTerm) {
			continue
		}
		rows = append(rows, s.withDepartment(e))
	}

	page, total := window(rows, req, func(a, b employee.EmployeeWithDepartment) bool {
		return byKeyThenID(a.FullName, b.FullName, a.ID, b.ID)
	})
	return page, total, nil
}

// Update rewrites the mutable columns. EmpNo is left as stored.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.employees[e.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if _, ok := s.departments[e.DepartmentID]; !ok {
		return employee.Employee{}, employee.DepartmentNotFoundError(e.DepartmentID)
	}

	current.FullName = e.FullName
	current.Email = e.Email
	current.HireDate = e.HireDate
	current.DepartmentID = e.DepartmentID
	current.UpdatedAt = s.now()
	s.employees[e.ID] = current
	return current, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}

func (s *Store) withDepartment(e employee.Employee) employee.EmployeeWithDepartment {
	return employee.EmployeeWithDepartment{
		Employee:       e,
		DepartmentName: s.departments[e.DepartmentID].Name,
	}
}

func (s *Store) empNoTaken(empNo string, except int64) bool {
	for id, e := range s.employees {
		if id != except && sameUpper(e.EmpNo, empNo) {
			return true
		}
	}
	return false
}
