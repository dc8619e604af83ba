package department

import (
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/apperror"
)

var (
	ErrDepartmentNotFound   = apperror.NotFound("department not found")
	ErrDepartmentNameExists = apperror.Conflict("department with this name already exists")
	ErrDepartmentInUse      = apperror.Conflict("department is still assigned to employees")
)

// NameExistsError names the colliding value while still matching ErrDepartmentNameExists.
func NameExistsError(name string) error {
	return apperror.Wrap(ErrDepartmentNameExists, fmt.Sprintf("Department '%s' already exists.", name))
}
