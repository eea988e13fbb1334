package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByFirstName(ctx context.Context, firstName string) (Employee, error)
	GetByPhoneNumber(ctx context.Context, phone string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// ListStartedBy returns employees whose employment started on or before date.
	ListStartedBy(ctx context.Context, date time.Time) ([]Employee, error)

	// GetByIDForUpdate locks the employee row for the remainder of the
	// surrounding transaction. Must be called inside TxManager.WithinTx;
	// advance decisions rely on it to serialize the check-then-commit step.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)

	// UpdateAttendance persists the attendance counters and the idempotency marker.
	UpdateAttendance(ctx context.Context, id string, daysThisMonth, totalDays int, lastAttendance time.Time) error
	// StampAttendance records the marker without touching the counters
	// (off-day employees still count as processed for the day).
	StampAttendance(ctx context.Context, id string, lastAttendance time.Time) error
	// ResetMonthlyWorkedDays zeroes days_worked_this_month where nonzero and
	// returns the number of employees affected.
	ResetMonthlyWorkedDays(ctx context.Context) (int, error)

	SetUsedSalary(ctx context.Context, id string, used decimal.Decimal) error
}
