package leave

import (
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveBalanceRequest_Normalize(t *testing.T) {
	b, err := CreateLeaveBalanceRequest{EmpNo: " emp001 ", Annual: 12, Sick: 0, Unpaid: 3}.Normalize()
	require.NoError(t, err)
	// Trimmed only; case is preserved.
	assert.Equal(t, "emp001", b.EmpNo)
	assert.Equal(t, 12, b.Annual)

	_, err = CreateLeaveBalanceRequest{EmpNo: "", Annual: -1, Sick: -2, Unpaid: 0}.Normalize()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{
		"emp_no": "emp_no is required",
		"annual": "annual must not be negative",
		"sick":   "sick must not be negative",
	}, verrs.ToMap())
}

func TestUpdateLeaveBalanceRequest_Normalize(t *testing.T) {
	b, err := UpdateLeaveBalanceRequest{Annual: 1, Sick: 2, Unpaid: 3}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, LeaveBalance{Annual: 1, Sick: 2, Unpaid: 3}, b)

	_, err = UpdateLeaveBalanceRequest{Unpaid: -1}.Normalize()
	assert.Error(t, err)
}
