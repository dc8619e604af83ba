package department

import (
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

// DepartmentResponse represents the response structure for a department.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateDepartmentRequest represents the request structure for creating a department.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

// Normalize trims the request and returns the entity to persist.
func (r CreateDepartmentRequest) Normalize() (Department, error) {
	var errs validator.ValidationErrors
	name := validator.RequiredString(&errs, "name", r.Name, NameMaxLength)
	if err := errs.Err(); err != nil {
		return Department{}, err
	}
	return Department{Name: name}, nil
}

// UpdateDepartmentRequest replaces every mutable field of a department.
type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r UpdateDepartmentRequest) Normalize() (Department, error) {
	return CreateDepartmentRequest(r).Normalize()
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
	}
}
