package department

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

// DepartmentRepository is the persistence port for departments. Lookups by id
// return ErrDepartmentNotFound when no row matches.
type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	// ExistsByName compares case-insensitively.
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, req paging.Request) ([]Department, int64, error)
	Update(ctx context.Context, d Department) (Department, error)
	Delete(ctx context.Context, id int64) error
}
