package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const leaveBalanceReturning = "RETURNING id, emp_no, annual, sick, unpaid, created_at, updated_at"

var leaveBalanceColumns = []string{"id", "emp_no", "annual", "sick", "unpaid", "created_at", "updated_at"}

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Insert("leave_balances").
		Columns("emp_no", "annual", "sick", "unpaid").
		Values(b.EmpNo, b.Annual, b.Sick, b.Unpaid).
		Suffix(leaveBalanceReturning).
		ToSql()
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("build insert: %w", err)
	}

	var created leave.LeaveBalance
	if err := pgxscan.Get(ctx, q, &created, sql, args...); err != nil {
		if isUniqueViolation(err, constraintLeaveBalanceEmpNo) {
			return leave.LeaveBalance{}, leave.LeaveBalanceExistsError(b.EmpNo)
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return created, nil
}

// GetByID implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveBalance, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmpNo implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmpNo(ctx context.Context, empNo string) (leave.LeaveBalance, error) {
	return r.getOne(ctx, upperEq("emp_no", strings.ToUpper(empNo)))
}

func (r *leaveBalanceRepositoryImpl) getOne(ctx context.Context, pred squirrel.Sqlizer) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Select(leaveBalanceColumns...).
		From("leave_balances").
		Where(pred).
		ToSql()
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("build query: %w", err)
	}

	var b leave.LeaveBalance
	if err := pgxscan.Get(ctx, q, &b, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

// ExistsByEmpNo implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ExistsByEmpNo(ctx context.Context, empNo string) (bool, error) {
	found, err := exists(ctx, GetQuerier(ctx, r.db), builder().
		Select("1").
		From("leave_balances").
		Where(upperEq("emp_no", empNo)))
	if err != nil {
		return false, fmt.Errorf("failed to check leave balance: %w", err)
	}
	return found, nil
}

// List implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) List(ctx context.Context, req paging.Request) ([]leave.LeaveBalance, int64, error) {
	count, page := leaveBalanceListQueries(req)

	items, total, err := selectPage[leave.LeaveBalance](ctx, GetQuerier(ctx, r.db), count, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave balances: %w", err)
	}
	return items, total, nil
}

func leaveBalanceListQueries(req paging.Request) (count, page squirrel.SelectBuilder) {
	base := builder().
		Select(leaveBalanceColumns...).
		From("leave_balances")
	if req.HasSearch() {
		base = base.Where(searchAny(req.SearchTerm, "emp_no"))
	}
	return pageQueries(base, req, "emp_no", "id")
}

// Update implements leave.LeaveBalanceRepository. emp_no is never rewritten.
func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Update("leave_balances").
		Set("annual", b.Annual).
		Set("sick", b.Sick).
		Set("unpaid", b.Unpaid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix(leaveBalanceReturning).
		ToSql()
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("build update: %w", err)
	}

	var updated leave.LeaveBalance
	if err := pgxscan.Get(ctx, q, &updated, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to update leave balance: %w", err)
	}

	return updated, nil
}

// Delete implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	sql, args, err := builder().
		Delete("leave_balances").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	commandTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete leave balance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveBalanceNotFound
	}

	return nil
}
