package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment is an immutable record of a payout. Recording one clears the
// employee's used salary; it is the settlement checkpoint.
type SalaryPayment struct {
	ID         string
	EmployeeID string
	PaidByID   string

	AmountPaid  decimal.Decimal
	PaymentDate time.Time
	Notes       *string

	CreatedAt time.Time

	// Joined for responses.
	EmployeeName *string
	PaidByName   *string
}
