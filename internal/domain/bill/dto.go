package bill

import (
	"time"

	"github.com/salarydesk/salary-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateBillRequest struct {
	RecorderID string          `json:"recorder_id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Reason     *string         `json:"reason,omitempty"`

	date time.Time
}

func (r *CreateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecorderID) {
		errs = append(errs, validator.ValidationError{Field: "recorder_id", Message: "recorder id is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if d, ok := validator.IsValidDate(r.Date); ok {
		r.date = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateValue returns the date parsed by Validate.
func (r CreateBillRequest) DateValue() time.Time {
	return r.date
}

type BillResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	EmployeeRole   string          `json:"employee_role,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Date           string          `json:"date"`
	Reason         *string         `json:"reason,omitempty"`
	RecordedByName string          `json:"recorded_by_name,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreateBillResult carries the created bill plus an overdraft warning when the
// bill policy is warn-only and the charge overdrew the balance.
type CreateBillResult struct {
	Bill    BillResponse `json:"bill"`
	Warning *string      `json:"warning,omitempty"`
}

func ToResponse(b Bill) BillResponse {
	resp := BillResponse{
		ID:         b.ID,
		EmployeeID: b.BilledEmployeeID,
		Amount:     b.Amount,
		Date:       b.Date.Format("2006-01-02"),
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
	}
	if b.EmployeeName != nil {
		resp.EmployeeName = *b.EmployeeName
	}
	if b.EmployeeRole != nil {
		resp.EmployeeRole = *b.EmployeeRole
	}
	if b.RecordedByName != nil {
		resp.RecordedByName = *b.RecordedByName
	}
	return resp
}
