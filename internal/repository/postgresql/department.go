package postgresql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var departmentColumns = []string{"id", "name", "created_at", "updated_at"}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Insert("departments").
		Columns("name").
		Values(d.Name).
		Suffix("RETURNING id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return department.Department{}, fmt.Errorf("build insert: %w", err)
	}

	var created department.Department
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		if isUniqueViolation(err, constraintDepartmentName) {
			return department.Department{}, department.NameExistsError(d.Name)
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Select(departmentColumns...).
		From("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return department.Department{}, fmt.Errorf("build query: %w", err)
	}

	var d department.Department
	if err := pgxscan.Get(ctx, q, &d, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

// ExistsByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, GetQuerier(ctx, r.db), builder().
		Select("1").
		From("departments").
		Where(upperEq("name", name)))
	if err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}
	return found, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context, req paging.Request) ([]department.Department, int64, error) {
	count, page := departmentListQueries(req)

	items, total, err := selectPage[department.Department](ctx, GetQuerier(ctx, r.db), count, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	return items, total, nil
}

func departmentListQueries(req paging.Request) (count, page squirrel.SelectBuilder) {
	base := builder().
		Select(departmentColumns...).
		From("departments")
	if req.HasSearch() {
		base = base.Where(searchAny(req.SearchTerm, "name"))
	}
	return pageQueries(base, req, "name", "id")
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Update("departments").
		Set("name", d.Name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return department.Department{}, fmt.Errorf("build update: %w", err)
	}

	var updated department.Department
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		switch {
		case pgxscan.NotFound(err):
			return department.Department{}, department.ErrDepartmentNotFound
		case isUniqueViolation(err, constraintDepartmentName):
			return department.Department{}, department.NameExistsError(d.Name)
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if isForeignKeyViolation(err, constraintEmployeeDept) {
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
