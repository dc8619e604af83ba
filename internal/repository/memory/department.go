package memory

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

type departmentRepository struct {
	store *Store
}

func (r *departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.departmentNameTaken(d.Name, 0) {
		return department.Department{}, department.NameExistsError(d.Name)
	}

	s.nextDepartmentID++
	d.ID = s.nextDepartmentID
	d.CreatedAt = s.now()
	d.UpdatedAt = d.CreatedAt
	s.departments[d.ID] = d
	return d, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (department.Department, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (r *departmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.departmentNameTaken(name, 0), nil
}

func (r *departmentRepository) List(ctx context.Context, req paging.Request) ([]department.Department, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]department.Department, 0, len(s.departments))
	for _, d := range s.departments {
		if req.HasSearch() && !containsFold(d.Name, req.SearchTerm) {
			continue
		}
		rows = append(rows, d)
	}

	page, total := window(rows, req, func(a, b department.Department) bool {
		return byKeyThenID(a.Name, b.Name, a.ID, b.ID)
	})
	return page, total, nil
}

func (r *departmentRepository) Update(ctx context.Context, d department.Department) (department.Department, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.departments[d.ID]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if s.departmentNameTaken(d.Name, d.ID) {
		return department.Department{}, department.NameExistsError(d.Name)
	}

	current.Name = d.Name
	current.UpdatedAt = s.now()
	s.departments[d.ID] = current
	return current, nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	for _, e := range s.employees {
		if e.DepartmentID == id {
			return department.ErrDepartmentInUse
		}
	}
	delete(s.departments, id)
	return nil
}

// departmentNameTaken must be called with the lock held. except skips one row
// so an update does not collide with itself.
func (s *Store) departmentNameTaken(name string, except int64) bool {
	for id, d := range s.departments {
		if id != except && sameUpper(d.Name, name) {
			return true
		}
	}
	return false
}
