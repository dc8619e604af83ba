package employee

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

// EmployeeRepository is the persistence port for employees. Reads join the
// department so callers always see its current name. A department_id that
// references no row surfaces as ErrDepartmentNotFound.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (EmployeeWithDepartment, error)
	// ExistsByEmpNo compares case-insensitively.
	ExistsByEmpNo(ctx context.Context, empNo string) (bool, error)
	List(ctx context.Context, req paging.Request) ([]EmployeeWithDepartment, int64, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
}
