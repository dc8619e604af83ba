package memory

import (
	"context"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
)

type leaveBalanceRepository struct {
	store *Store
}

func (r *leaveBalanceRepository) Create(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.balanceByEmpNo(b.EmpNo); ok {
		return leave.LeaveBalance{}, leave.LeaveBalanceExistsError(b.EmpNo)
	}

	s.nextBalanceID++
	b.ID = s.nextBalanceID
	b.CreatedAt = s.now()
	b.UpdatedAt = b.CreatedAt
	s.balances[b.ID] = b
	return b, nil
}

func (r *leaveBalanceRepository) GetByID(ctx context.Context, id int64) (leave.LeaveBalance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.balances[id]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return b, nil
}

func (r *leaveBalanceRepository) GetByEmpNo(ctx context.Context, empNo string) (leave.LeaveBalance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.balanceByEmpNo(empNo)
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return b, nil
}

func (r *leaveBalanceRepository) ExistsByEmpNo(ctx context.Context, empNo string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.balanceByEmpNo(empNo)
	return ok, nil
}

func (r *leaveBalanceRepository) List(ctx context.Context, req paging.Request) ([]leave.LeaveBalance, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]leave.LeaveBalance, 0, len(s.balances))
	for _, b := range s.balances {
		if req.HasSearch() && !containsFold(b.EmpNo, req.SearchTerm) {
			continue
		}
		rows = append(rows, b)
	}

	page, total := window(rows, req, func(a, b leave.LeaveBalance) bool {
		return byKeyThenID(a.EmpNo, b.EmpNo, a.ID, b.ID)
	})
	return page, total, nil
}

// Update rewrites the quantities. EmpNo is left as stored.
func (r *leaveBalanceRepository) Update(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.balances[b.ID]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}

	current.Annual = b.Annual
	current.Sick = b.Sick
	current.Unpaid = b.Unpaid
	current.UpdatedAt = s.now()
	s.balances[b.ID] = current
	return current, nil
}

func (r *leaveBalanceRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.balances[id]; !ok {
		return leave.ErrLeaveBalanceNotFound
	}
	delete(s.balances, id)
	return nil
}

func (s *Store) balanceByEmpNo(empNo string) (leave.LeaveBalance, bool) {
	for _, b := range s.balances {
		if sameUpper(b.EmpNo, empNo) {
			return b, true
		}
	}
	return leave.LeaveBalance{}, false
}
