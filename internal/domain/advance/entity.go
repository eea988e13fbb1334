package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Advance struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Reason     *string

	Status        Status
	ApprovedAt    *time.Time
	ApprovalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses.
	EmployeeName *string
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Decided reports whether the advance has reached a terminal state.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusDenied
}
