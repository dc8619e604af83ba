package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(db)

	eng, err := repo.Create(ctx, department.Department{Name: "Engineering"})
	require.NoError(t, err)
	assert.Positive(t, eng.ID)
	assert.False(t, eng.CreatedAt.IsZero())

	_, err = repo.Create(ctx, department.Department{Name: "Finance"})
	require.NoError(t, err)

	t.Run("unique index ignores case", func(t *testing.T) {
		_, err := repo.Create(ctx, department.Department{Name: "ENGINEERING"})
		assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
	})

	t.Run("exists by upper name", func(t *testing.T) {
		found, err := repo.ExistsByName(ctx, "FINANCE")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("search", func(t *testing.T) {
		items, total, err := repo.List(ctx, paging.New(1, 10, "eng"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Engineering", items[0].Name)
	})

	t.Run("update and delete", func(t *testing.T) {
		eng.Name = "Platform"
		updated, err := repo.Update(ctx, eng)
		require.NoError(t, err)
		assert.Equal(t, "Platform", updated.Name)

		require.NoError(t, repo.Delete(ctx, eng.ID))
		_, err = repo.GetByID(ctx, eng.ID)
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, eng.ID), department.ErrDepartmentNotFound)
	})
}

func TestEmployeeRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	departments := postgresql.NewDepartmentRepository(db)
	employees := postgresql.NewEmployeeRepository(db)

	ops, err := departments.Create(ctx, department.Department{Name: "Operations"})
	require.NoError(t, err)

	hired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := employees.Create(ctx, employee.Employee{
		EmpNo: "E-1", FullName: "Ada Lovelace", Email: "ada@example.com", HireDate: hired, DepartmentID: ops.ID,
	})
	require.NoError(t, err)

	got, err := employees.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Operations", got.DepartmentName)
	assert.True(t, hired.Equal(got.HireDate))

	_, err = employees.Create(ctx, employee.Employee{
		EmpNo: "e-1", FullName: "Other", Email: "o@x", HireDate: hired, DepartmentID: ops.ID,
	})
	assert.ErrorIs(t, err, employee.ErrEmpNoExists)

	_, err = employees.Create(ctx, employee.Employee{
		EmpNo: "E-2", FullName: "Other", Email: "o@x", HireDate: hired, DepartmentID: ops.ID + 100,
	})
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)

	assert.ErrorIs(t, departments.Delete(ctx, ops.ID), department.ErrDepartmentInUse)

	items, total, err := employees.List(ctx, paging.New(1, 10, "EXAMPLE.COM"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "E-1", items[0].EmpNo)
}

func TestLeaveBalanceRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveBalanceRepository(db)

	created, err := repo.Create(ctx, leave.LeaveBalance{EmpNo: "emp001", Annual: 12, Sick: 5})
	require.NoError(t, err)

	got, err := repo.GetByEmpNo(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.Create(ctx, leave.LeaveBalance{EmpNo: "EMP001"})
	assert.ErrorIs(t, err, leave.ErrLeaveBalanceExists)

	got.Annual = 3
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Annual)
	assert.Equal(t, "emp001", updated.EmpNo)

	_, err = repo.Update(ctx, leave.LeaveBalance{ID: created.ID + 100})
	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tx := postgresql.NewTxManager(db)
	repo := postgresql.NewDepartmentRepository(db)

	boom := errors.New("boom")
	err := tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, department.Department{Name: "Temp"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := repo.ExistsByName(ctx, "TEMP")
	require.NoError(t, err)
	assert.False(t, found)
}
