package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	ListPending(ctx context.Context) ([]Advance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Advance, error)
	ListAll(ctx context.Context) ([]Advance, error)

	// UpdateDecision persists status, approved_at and approval_notes.
	UpdateDecision(ctx context.Context, adv Advance) error

	// SumApproved totals approved advance amounts for the employee. excludeID,
	// when non-nil, leaves that advance out of the sum (used while deciding it).
	SumApproved(ctx context.Context, employeeID string, excludeID *string) (decimal.Decimal, error)
}
