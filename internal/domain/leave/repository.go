package leave

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

// LeaveBalanceRepository is the persistence port for leave balances.
// Employee numbers are matched case-insensitively.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, b LeaveBalance) (LeaveBalance, error)
	GetByID(ctx context.Context, id int64) (LeaveBalance, error)
	GetByEmpNo(ctx context.Context, empNo string) (LeaveBalance, error)
	ExistsByEmpNo(ctx context.Context, empNo string) (bool, error)
	List(ctx context.Context, req paging.Request) ([]LeaveBalance, int64, error)
	Update(ctx context.Context, b LeaveBalance) (LeaveBalance, error)
	Delete(ctx context.Context, id int64) error
}
