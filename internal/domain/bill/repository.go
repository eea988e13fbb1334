package bill

import (
	"context"

	"github.com/shopspring/decimal"
)

type BillRepository interface {
	Create(ctx context.Context, b Bill) (Bill, error)
	ListAll(ctx context.Context) ([]Bill, error)
	ListRecentByRecorder(ctx context.Context, recorderID string, limit int) ([]Bill, error)

	// SumByEmployee totals all bill amounts charged to the employee.
	SumByEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
