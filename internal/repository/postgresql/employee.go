package postgresql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const employeeReturning = "RETURNING id, emp_no, full_name, email, hire_date, department_id, created_at, updated_at"

var employeeJoinedColumns = []string{
	"e.id", "e.emp_no", "e.full_name", "e.email", "e.hire_date", "e.department_id",
	"e.created_at", "e.updated_at", "d.name AS department_name",
}

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func employeeSelect() squirrel.SelectBuilder {
	return builder().
		Select(employeeJoinedColumns...).
		From("employees e").
		Join("departments d ON d.id = e.department_id")
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Insert("employees").
		Columns("emp_no", "full_name", "email", "hire_date", "department_id").
		Values(e.EmpNo, e.FullName, e.Email, e.HireDate, e.DepartmentID).
		Suffix(employeeReturning).
		ToSql()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("build insert: %w", err)
	}

	var created employee.Employee
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		return employee.Employee{}, translateEmployeeWrite(err, e, "create")
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeWithDepartment, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := employeeSelect().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return employee.EmployeeWithDepartment{}, fmt.Errorf("build query: %w", err)
	}

	var e employee.EmployeeWithDepartment
	if err := pgxscan.Get(ctx, q, &e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return employee.EmployeeWithDepartment{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeWithDepartment{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// ExistsByEmpNo implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmpNo(ctx context.Context, empNo string) (bool, error) {
	found, err := exists(ctx, GetQuerier(ctx, r.db), builder().
		Select("1").
		From("employees").
		Where(upperEq("emp_no", empNo)))
	if err != nil {
		return false, fmt.Errorf("failed to check employee number: %w", err)
	}
	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, req paging.Request) ([]employee.EmployeeWithDepartment, int64, error) {
	count, page := employeeListQueries(req)

	items, total, err := selectPage[employee.EmployeeWithDepartment](ctx, GetQuerier(ctx, r.db), count, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return items, total, nil
}

func employeeListQueries(req paging.Request) (count, page squirrel.SelectBuilder) {
	base := employeeSelect()
	if req.HasSearch() {
		base = base.Where(searchAny(req.SearchTerm, "e.full_name", "e.emp_no", "e.email"))
	}
	return pageQueries(base, req, "e.full_name", "e.id")
}

// Update implements employee.EmployeeRepository. emp_no is never rewritten.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Update("employees").
		Set("full_name", e.FullName).
		Set("email", e.Email).
		Set("hire_date", e.HireDate).
		Set("department_id", e.DepartmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix(employeeReturning).
		ToSql()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("build update: %w", err)
	}

	var updated employee.Employee
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, translateEmployeeWrite(err, e, "update")
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Delete("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func translateEmployeeWrite(err error, e employee.Employee, op string) error {
	switch {
	case isUniqueViolation(err, constraintEmployeeEmpNo):
		return employee.EmpNoExistsError(e.EmpNo)
	case isForeignKeyViolation(err, constraintEmployeeDept):
		return employee.DepartmentNotFoundError(e.DepartmentID)
	}
	return fmt.Errorf("failed to %s employee: %w", op, err)
}
