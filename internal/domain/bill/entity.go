package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is an expense charged against an employee's salary. Bills are immutable
// once recorded and contribute to used salary unconditionally.
type Bill struct {
	ID               string
	BilledEmployeeID string
	RecordedByID     string
	Amount           decimal.Decimal
	Date             time.Time
	Reason           *string

	CreatedAt time.Time

	// Joined for responses.
	EmployeeName   *string
	EmployeeRole   *string
	RecordedByName *string
}
