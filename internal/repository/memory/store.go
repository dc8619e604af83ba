// Package memory keeps all three resources in process memory. It enforces the
// same uniqueness and foreign-key rules as the PostgreSQL schema, so services
// see identical failures whichever driver is configured.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

// Store owns the tables. Every method takes the lock for its whole duration,
// so each repository call is atomic.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	departments map[int64]department.Department
	employees   map[int64]employee.Employee
	balances    map[int64]leave.LeaveBalance

	nextDepartmentID int64
	nextEmployeeID   int64
	nextBalanceID    int64
}

func NewStore() *Store {
	return &Store{
		now:         func() time.Time { return time.Now().UTC() },
		departments: make(map[int64]department.Department),
		employees:   make(map[int64]employee.Employee),
		balances:    make(map[int64]leave.LeaveBalance),
	}
}

// Ping reports the store as reachable unless ctx is done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Departments() department.DepartmentRepository {
	return &departmentRepository{store: s}
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepository{store: s}
}

func (s *Store) LeaveBalances() leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{store: s}
}

// containsFold is the ILIKE '%term%' of this driver.
func containsFold(value, term string) bool {
	return strings.Contains(strings.ToUpper(value), strings.ToUpper(term))
}

// window sorts rows by less, then cuts out the requested page. The count is
// taken before cutting.
func window[T any](rows []T, req paging.Request, less func(a, b T) bool) ([]T, int64) {
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })

	total := int64(len(rows))
	start := req.Offset()
	if start < 0 || start >= len(rows) {
		return []T{}, total
	}
	end := start + req.Limit()
	if end > len(rows) || end < start {
		end = len(rows)
	}
	return rows[start:end], total
}

// sameUpper matches the UPPER(col) = UPPER(value) comparison of the unique indexes.
func sameUpper(a, b string) bool {
	return strings.ToUpper(a) == strings.ToUpper(b)
}

func byKeyThenID(a, b string, aID, bID int64) bool {
	if a != b {
		return a < b
	}
	return aID < bID
}
