package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Constraint names from schema.sql.
const (
	constraintDepartmentName    = "departments_name_key"
	constraintEmployeeEmpNo     = "employees_emp_no_key"
	constraintEmployeeDept      = "employees_department_id_fkey"
	constraintLeaveBalanceEmpNo = "leave_balances_emp_no_key"
)

// violation reports whether err is a PostgreSQL error with the given code.
// An empty constraint matches any constraint.
func violation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func isUniqueViolation(err error, constraint string) bool {
	return violation(err, codeUniqueViolation, constraint)
}

func isForeignKeyViolation(err error, constraint string) bool {
	return violation(err, codeForeignKeyViolation, constraint)
}
