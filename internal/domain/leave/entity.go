package leave

import "time"

// LeaveBalance holds the remaining leave days of one employee number.
type LeaveBalance struct {
	ID        int64     `db:"id"`
	EmpNo     string    `db:"emp_no"`
	Annual    int       `db:"annual"`
	Sick      int       `db:"sick"`
	Unpaid    int       `db:"unpaid"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const EmpNoMaxLength = 32
