package payment

import (
	"time"

	"github.com/salarydesk/salary-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	EmployeeID string `json:"employee_id"`
	// AdminID is taken from the caller's token, never from the body.
	AdminID string `json:"-"`
	// Amount defaults to the employee's payable remaining salary when omitted.
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	PaymentDate *string          `json:"payment_date,omitempty"`
	Notes       *string          `json:"notes,omitempty"`

	paymentDate *time.Time
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{Field: "admin_id", Message: "admin id is required"})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount cannot be negative"})
	}
	if r.PaymentDate != nil {
		if d, ok := validator.IsValidDate(*r.PaymentDate); ok {
			r.paymentDate = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PaymentDateValue returns the payment date parsed by Validate, nil when the
// request left it to default.
func (r RecordPaymentRequest) PaymentDateValue() *time.Time {
	return r.paymentDate
}

type PaymentResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	PaymentDate  string          `json:"payment_date"`
	Notes        *string         `json:"notes,omitempty"`
	PaidByName   string          `json:"paid_by_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func ToResponse(p SalaryPayment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		AmountPaid:  p.AmountPaid,
		PaymentDate: p.PaymentDate.Format("2006-01-02"),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.PaidByName != nil {
		resp.PaidByName = *p.PaidByName
	}
	return resp
}
