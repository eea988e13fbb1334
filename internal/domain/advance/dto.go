package advance

import (
	"time"

	"github.com/salarydesk/salary-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RequestAdvanceRequest struct {
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     *string         `json:"reason,omitempty"`
}

func (r RequestAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideAdvanceRequest struct {
	// AdminID is taken from the caller's token, never from the body.
	AdminID  string  `json:"-"`
	Approved bool    `json:"approved"`
	Notes    *string `json:"notes,omitempty"`
}

type AdvanceResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        *string         `json:"reason,omitempty"`
	Status        string          `json:"status"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
	ApprovalNotes *string         `json:"approval_notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToResponse(a Advance) AdvanceResponse {
	resp := AdvanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Amount:        a.Amount,
		Reason:        a.Reason,
		Status:        string(a.Status),
		ApprovedAt:    a.ApprovedAt,
		ApprovalNotes: a.ApprovalNotes,
		CreatedAt:     a.CreatedAt,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	return resp
}
