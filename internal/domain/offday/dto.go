package offday

import (
	"time"

	"github.com/salarydesk/salary-backend-go/internal/pkg/validator"
)

type RequestOffDayRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	DayCount   int     `json:"day_count"`
	OffType    string  `json:"off_type"`
	Reason     *string `json:"reason,omitempty"`

	date time.Time
}

func (r *RequestOffDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if d, ok := validator.IsValidDate(r.Date); ok {
		r.date = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.DayCount < 1 {
		errs = append(errs, validator.ValidationError{Field: "day_count", Message: "must be at least 1"})
	}
	if !OffType(r.OffType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "off_type", Message: "must be full or half"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateValue returns the start date parsed by Validate.
func (r RequestOffDayRequest) DateValue() time.Time {
	return r.date
}

type DecideOffDayRequest struct {
	// AdminID is taken from the caller's token, never from the body.
	AdminID  string `json:"-"`
	Approved bool   `json:"approved"`
}

type OffDayResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Date         string    `json:"date"`
	DayCount     int       `json:"day_count"`
	OffType      string    `json:"off_type"`
	Reason       *string   `json:"reason,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToResponse(o OffDay) OffDayResponse {
	resp := OffDayResponse{
		ID:         o.ID,
		EmployeeID: o.EmployeeID,
		Date:       o.Date.Format("2006-01-02"),
		DayCount:   o.DayCount,
		OffType:    string(o.OffType),
		Reason:     o.Reason,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
	}
	if o.EmployeeName != nil {
		resp.EmployeeName = *o.EmployeeName
	}
	return resp
}
