package employee

import (
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID             int64  `json:"id"`
	EmpNo          string `json:"emp_no"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name"`
	HireDate       string `json:"hire_date"`
}

type CreateEmployeeRequest struct {
	EmpNo        string `json:"emp_no"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"department_id"`
	HireDate     string `json:"hire_date"`
}

// Normalize trims and validates every field, reporting all invalid fields at once.
func (r CreateEmployeeRequest) Normalize() (Employee, error) {
	var errs validator.ValidationErrors

	empNo := validator.RequiredString(&errs, "emp_no", r.EmpNo, EmpNoMaxLength)
	e := normalizeDetails(&errs, r.FullName, r.Email, r.DepartmentID, r.HireDate)
	e.EmpNo = empNo

	if err := errs.Err(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// UpdateEmployeeRequest replaces every mutable field. EmpNo is fixed at creation.
type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"department_id"`
	HireDate     string `json:"hire_date"`
}

func (r UpdateEmployeeRequest) Normalize() (Employee, error) {
	var errs validator.ValidationErrors
	e := normalizeDetails(&errs, r.FullName, r.Email, r.DepartmentID, r.HireDate)
	if err := errs.Err(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func normalizeDetails(errs *validator.ValidationErrors, fullName, email string, departmentID int64, hireDate string) Employee {
	e := Employee{
		FullName:     validator.RequiredString(errs, "full_name", fullName, FullNameMaxLength),
		Email:        validator.RequiredString(errs, "email", email, EmailMaxLength),
		DepartmentID: departmentID,
		HireDate:     validator.RequiredDate(errs, "hire_date", hireDate),
	}
	if e.Email != "" && !validator.IsValidEmail(e.Email) {
		errs.Add("email", "a valid email address is required")
	}
	if departmentID <= 0 {
		errs.Add("department_id", "department_id is required")
	}
	return e
}

func ToResponse(e EmployeeWithDepartment) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmpNo:          e.EmpNo,
		FullName:       e.FullName,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		HireDate:       e.HireDate.Format(validator.DateLayout),
	}
}
