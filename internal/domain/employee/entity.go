package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                  string
	FirstName           string
	LastName            string
	Role                Role
	Salary              decimal.Decimal
	PhoneNumber         string
	EmploymentStartDate time.Time

	// Attendance counters, maintained by the daily sweep.
	DaysWorkedThisMonth int
	TotalDaysWorked     int
	// LastAttendanceDate is the idempotency marker for the daily sweep. It is
	// deliberately separate from UpdatedAt so unrelated writes cannot make a
	// day look already counted.
	LastAttendanceDate *time.Time

	// UsedSalary is a cache of sum(bills) + sum(approved advances). Decisions
	// recompute from source rows; this column is refreshed afterwards.
	UsedSalary decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RemainingSalary is the canonical balance: base salary minus used salary.
// Negative values signal overdraft and are not clamped.
func (e Employee) RemainingSalary() decimal.Decimal {
	return e.Salary.Sub(e.UsedSalary)
}

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// CanRecordBills reports whether the role may record bills against others.
func (r Role) CanRecordBills() bool {
	return r == RoleManager || r == RoleAdmin
}
