// Package attendance defines the daily attendance sweep contract. Attendance
// state itself lives on the employee row; this package owns the sweep
// semantics and its reporting types.
package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// SweepEmployee applies one day of attendance to a single employee and
	// reports the outcome. Running it twice for the same day is a no-op the
	// second time.
	SweepEmployee(ctx context.Context, employeeID string, day time.Time) (Outcome, error)

	// SweepAll applies one day of attendance to every employee.
	SweepAll(ctx context.Context, day time.Time) (SweepStats, error)

	// IsOffDay reports whether an approved off-day range covers day for the
	// employee.
	IsOffDay(ctx context.Context, employeeID string, day time.Time) (bool, error)

	// ResetMonthlyCounters zeroes days_worked_this_month for every employee
	// with a nonzero counter and returns how many rows changed. It only acts
	// when day is the first of the month.
	ResetMonthlyCounters(ctx context.Context, day time.Time) (int, error)
}
