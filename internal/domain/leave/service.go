package leave

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

type LeaveBalanceService interface {
	List(ctx context.Context, req *paging.Request) (paging.Result[LeaveBalanceResponse], error)
	GetByID(ctx context.Context, id int64) (*LeaveBalanceResponse, error)
	GetByEmpNo(ctx context.Context, empNo string) (*LeaveBalanceResponse, error)
	Create(ctx context.Context, req CreateLeaveBalanceRequest) (LeaveBalanceResponse, error)
	Update(ctx context.Context, id int64, req UpdateLeaveBalanceRequest) (*LeaveBalanceResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
