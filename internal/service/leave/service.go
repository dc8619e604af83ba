package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/transaction"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-backend-go/internal/service/unique"
)

type leaveBalanceServiceImpl struct {
	txManager   transaction.Manager
	balanceRepo leave.LeaveBalanceRepository
}

func NewLeaveBalanceService(txManager transaction.Manager, balanceRepo leave.LeaveBalanceRepository) leave.LeaveBalanceService {
	return &leaveBalanceServiceImpl{
		txManager:   txManager,
		balanceRepo: balanceRepo,
	}
}

// List implements leave.LeaveBalanceService.
func (s *leaveBalanceServiceImpl) List(ctx context.Context, req *paging.Request) (paging.Result[leave.LeaveBalanceResponse], error) {
	p := req.OrDefault()

	balances, total, err := s.balanceRepo.List(ctx, p)
	if err != nil {
		return paging.Result[leave.LeaveBalanceResponse]{}, fmt.Errorf("failed to list leave balances: %w", err)
	}

	return paging.NewResult(p, balances, total, leave.ToResponse), nil
}

// GetByID implements leave.LeaveBalanceService.
func (s *leaveBalanceServiceImpl) GetByID(ctx context.Context, id int64) (*leave.LeaveBalanceResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return nil, err
	}
	return found(s.balanceRepo.GetByID(ctx, id))
}

// GetByEmpNo implements leave.LeaveBalanceService.
func (s *leaveBalanceServiceImpl) GetByEmpNo(ctx context.Context, empNo string) (*leave.LeaveBalanceResponse, error) {
	var errs validator.ValidationErrors
	empNo = validator.RequiredString(&errs, "emp_no", empNo, leave.EmpNoMaxLength)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return found(s.balanceRepo.GetByEmpNo(ctx, empNo))
}

// Create implements leave.LeaveBalanceService.
func (s *leaveBalanceServiceImpl) Create(ctx context.Context, req leave.CreateLeaveBalanceRequest) (leave.LeaveBalanceResponse, error) {
	balance, err := req.Normalize()
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	var created leave.LeaveBalance
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := unique.Ensure(ctx, balance.EmpNo, s.balanceRepo.ExistsByEmpNo, leave.LeaveBalanceExistsError); err != nil {
			return err
		}
		created, err = s.balanceRepo.Create(ctx, balance)
		return err
	})
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// Update implements leave.LeaveBalanceService. The employee number is kept as
// created, so the uniqueness guard never runs here.
func (s *leaveBalanceServiceImpl) Update(ctx context.Context, id int64, req leave.UpdateLeaveBalanceRequest) (*leave.LeaveBalanceResponse, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return nil, err
	}

	var updated *leave.LeaveBalanceResponse
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.balanceRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
				return nil
			}
			return err
		}

		incoming, err := req.Normalize()
		if err != nil {
			return err
		}

		current.Annual = incoming.Annual
		current.Sick = incoming.Sick
		current.Unpaid = incoming.Unpaid

		updated, err = found(s.balanceRepo.Update(ctx, current))
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements leave.LeaveBalanceService.
func (s *leaveBalanceServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	if err := validator.ValidateID("id", id); err != nil {
		return false, err
	}

	err := s.balanceRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// found maps a repository lookup to the service's "not present" convention.
func found(b leave.LeaveBalance, err error) (*leave.LeaveBalanceResponse, error) {
	if err != nil {
		if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := leave.ToResponse(b)
	return &resp, nil
}
