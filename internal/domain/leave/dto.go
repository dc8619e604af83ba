package leave

import (
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
)

type LeaveBalanceResponse struct {
	ID     int64  `json:"id"`
	EmpNo  string `json:"emp_no"`
	Annual int    `json:"annual"`
	Sick   int    `json:"sick"`
	Unpaid int    `json:"unpaid"`
}

type CreateLeaveBalanceRequest struct {
	EmpNo  string `json:"emp_no"`
	Annual int    `json:"annual"`
	Sick   int    `json:"sick"`
	Unpaid int    `json:"unpaid"`
}

func (r CreateLeaveBalanceRequest) Normalize() (LeaveBalance, error) {
	var errs validator.ValidationErrors
	b := LeaveBalance{
		EmpNo:  validator.RequiredString(&errs, "emp_no", r.EmpNo, EmpNoMaxLength),
		Annual: r.Annual,
		Sick:   r.Sick,
		Unpaid: r.Unpaid,
	}
	validateQuantities(&errs, b)
	if err := errs.Err(); err != nil {
		return LeaveBalance{}, err
	}
	return b, nil
}

// UpdateLeaveBalanceRequest replaces the three quantities. EmpNo is fixed at creation.
type UpdateLeaveBalanceRequest struct {
	Annual int `json:"annual"`
	Sick   int `json:"sick"`
	Unpaid int `json:"unpaid"`
}

func (r UpdateLeaveBalanceRequest) Normalize() (LeaveBalance, error) {
	var errs validator.ValidationErrors
	b := LeaveBalance{Annual: r.Annual, Sick: r.Sick, Unpaid: r.Unpaid}
	validateQuantities(&errs, b)
	if err := errs.Err(); err != nil {
		return LeaveBalance{}, err
	}
	return b, nil
}

func validateQuantities(errs *validator.ValidationErrors, b LeaveBalance) {
	validator.NonNegative(errs, "annual", b.Annual)
	validator.NonNegative(errs, "sick", b.Sick)
	validator.NonNegative(errs, "unpaid", b.Unpaid)
}

func ToResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:     b.ID,
		EmpNo:  b.EmpNo,
		Annual: b.Annual,
		Sick:   b.Sick,
		Unpaid: b.Unpaid,
	}
}
