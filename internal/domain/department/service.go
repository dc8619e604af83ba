package department

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

// DepartmentService defines business logic for department operations.
// GetByID and Update return nil, and Delete false, when the id is absent.
type DepartmentService interface {
	List(ctx context.Context, req *paging.Request) (paging.Result[DepartmentResponse], error)
	GetByID(ctx context.Context, id int64) (*DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id int64, req UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
