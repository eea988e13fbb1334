// Package salary defines the contracts of the salary ledger: used and
// remaining balances, refresh, the month rollover and summaries.
package salary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SalaryService interface {
	// UsedSalary recomputes sum(bills) + sum(approved advances) from the
	// source rows. The employees.used_salary column is only a cache of this.
	UsedSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)

	// RemainingSalary is the canonical signed balance: salary - used. It goes
	// negative on overdraft.
	RemainingSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)

	// PayableRemaining clamps the remaining balance at zero. Payouts and
	// display use this; decision checks never do.
	PayableRemaining(ctx context.Context, employeeID string) (decimal.Decimal, error)

	// RefreshUsedSalary recomputes used salary and writes it back to the
	// employee row, returning the fresh value.
	RefreshUsedSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)

	Summary(ctx context.Context, employeeID string) (Summary, error)
	SummaryAll(ctx context.Context) ([]Summary, error)

	// RolloverMonthly settles every employee's ledger for a new month. It only
	// acts when day is the first of the month; any other day is a no-op.
	RolloverMonthly(ctx context.Context, day time.Time) (RolloverStats, error)
}
