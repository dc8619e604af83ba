package employee

import (
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/apperror"
)

var (
	ErrEmployeeNotFound   = apperror.NotFound("employee not found")
	ErrEmpNoExists        = apperror.Conflict("employee number already exists")
	ErrDepartmentNotFound = apperror.NotFound("department not found")
)

func EmpNoExistsError(empNo string) error {
	return apperror.Wrap(ErrEmpNoExists, fmt.Sprintf("Employee number '%s' already exists.", empNo))
}

func DepartmentNotFoundError(departmentID int64) error {
	return apperror.Wrap(ErrDepartmentNotFound, fmt.Sprintf("Department '%d' was not found.", departmentID))
}
