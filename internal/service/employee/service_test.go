package employee

import (
	"context"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/transaction"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   employee.EmployeeService
	store *memory.Store
	eng   department.Department
	ops   department.Department
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	eng, err := store.Departments().Create(ctx, department.Department{Name: "Engineering"})
	require.NoError(t, err)
	ops, err := store.Departments().Create(ctx, department.Department{Name: "Operations"})
	require.NoError(t, err)

	return fixture{
		svc:   NewEmployeeService(transaction.Passthrough, store.Employees(), store.Departments()),
		store: store,
		eng:   eng,
		ops:   ops,
	}
}

func validCreate(departmentID int64) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmpNo:        " E-001 ",
		FullName:     " Ada Lovelace ",
		Email:        "ada@example.com",
		DepartmentID: departmentID,
		HireDate:     "2024-03-01",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), validCreate(f.eng.ID))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "E-001", created.EmpNo)
	assert.Equal(t, "Ada Lovelace", created.FullName)
	assert.Equal(t, f.eng.ID, created.DepartmentID)
	assert.Equal(t, "Engineering", created.DepartmentName)
	assert.Equal(t, "2024-03-01", created.HireDate)
}

func TestEmployeeService_CreateFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, validCreate(f.eng.ID))
	require.NoError(t, err)

	t.Run("duplicate emp_no ignoring case", func(t *testing.T) {
		req := validCreate(f.ops.ID)
		req.EmpNo = "e-001"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, employee.ErrEmpNoExists)
		assert.Equal(t, "Employee number 'e-001' already exists.", apperror.Message(err))
	})

	t.Run("missing department", func(t *testing.T) {
		req := validCreate(404)
		req.EmpNo = "E-404"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Email: "ada@", HireDate: "0001-01-01"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := verrs.ToMap()
		for _, field := range []string{"emp_no", "full_name", "email", "department_id", "hire_date"} {
			assert.Contains(t, fields, field)
		}
	})
}

func TestEmployeeService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreate(f.eng.ID))
	require.NoError(t, err)

	got, err := f.svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		FullName:     "Ada King",
		Email:        "ada.king@example.com",
		DepartmentID: f.ops.ID,
		HireDate:     "2024-04-01",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "E-001", got.EmpNo)
	assert.Equal(t, "Ada King", got.FullName)
	assert.Equal(t, "Operations", got.DepartmentName)
	assert.Equal(t, "2024-04-01", got.HireDate)

	_, err = f.svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
		FullName: "Ada", Email: "a@x", DepartmentID: 999, HireDate: "2024-04-01",
	})
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)

	got, err = f.svc.Update(ctx, 999, employee.UpdateEmployeeRequest{
		FullName: "Nobody", Email: "n@x", DepartmentID: f.eng.ID, HireDate: "2024-04-01",
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeService_ListSearchesEveryTextColumn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seed := []employee.CreateEmployeeRequest{
		{EmpNo: "E-1", FullName: "Grace Hopper", Email: "grace@navy.mil", DepartmentID: f.eng.ID, HireDate: "2020-01-01"},
		{EmpNo: "E-2", FullName: "Alan Turing", Email: "alan@bletchley.uk", DepartmentID: f.eng.ID, HireDate: "2020-01-01"},
		{EmpNo: "NAVY-3", FullName: "Bob Smith", Email: "bob@example.com", DepartmentID: f.ops.ID, HireDate: "2020-01-01"},
	}
	for _, req := range seed {
		_, err := f.svc.Create(ctx, req)
		require.NoError(t, err)
	}

	res, err := f.svc.List(ctx, paging.FromQuery(nil, nil, "navy"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Bob Smith", res.Items[0].FullName)
	assert.Equal(t, "Grace Hopper", res.Items[1].FullName)
}

func TestEmployeeService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreate(f.eng.ID))
	require.NoError(t, err)

	ok, err := f.svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.svc.Delete(ctx, 0)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestEmployeeService_ConcurrentCreateSameEmpNo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.svc.Create(ctx, validCreate(f.eng.ID))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range results {
		if err == nil {
			ok++
		} else if apperror.KindOf(err) == apperror.KindConflict {
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
}
