package employee

import "time"

type Employee struct {
	ID           int64     `db:"id"`
	EmpNo        string    `db:"emp_no"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	HireDate     time.Time `db:"hire_date"`
	DepartmentID int64     `db:"department_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// EmployeeWithDepartment is an employee joined with the current name of its department.
type EmployeeWithDepartment struct {
	Employee
	DepartmentName string `db:"department_name"`
}

// Column widths of the employees table.
const (
	EmpNoMaxLength    = 32
	FullNameMaxLength = 200
	EmailMaxLength    = 200
)
