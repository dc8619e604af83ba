package leave

import (
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/apperror"
)

var (
	ErrLeaveBalanceNotFound = apperror.NotFound("leave balance not found")
	ErrLeaveBalanceExists   = apperror.Conflict("leave balance for this employee already exists")
)

func LeaveBalanceExistsError(empNo string) error {
	return apperror.Wrap(ErrLeaveBalanceExists, fmt.Sprintf("Leave balance for employee '%s' already exists.", empNo))
}
