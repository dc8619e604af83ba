package employee

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	List(ctx context.Context, req *paging.Request) (paging.Result[EmployeeResponse], error)
	GetByID(ctx context.Context, id int64) (*EmployeeResponse, error)
	// Create requires an existing department and an unused employee number.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
