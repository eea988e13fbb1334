package employee

import (
	"time"

	"github.com/salarydesk/salary-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Role                string          `json:"role"`
	Salary              decimal.Decimal `json:"salary"`
	PhoneNumber         string          `json:"phone_number"`
	EmploymentStartDate *string         `json:"employment_start_date,omitempty"`

	startDate *time.Time
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	// Admins are seeded, not onboarded through the API.
	if role := Role(r.Role); role != RoleStaff && role != RoleManager {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be staff or manager"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be greater than zero"})
	}
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "invalid phone number"})
	}
	if r.EmploymentStartDate != nil {
		if d, ok := validator.IsValidDate(*r.EmploymentStartDate); ok {
			r.startDate = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "employment_start_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StartDateValue returns the start date parsed by Validate, nil when the
// request left it to default.
func (r CreateEmployeeRequest) StartDateValue() *time.Time {
	return r.startDate
}

type EmployeeResponse struct {
	ID                  string          `json:"id"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Role                string          `json:"role"`
	Salary              decimal.Decimal `json:"salary"`
	PhoneNumber         string          `json:"phone_number"`
	EmploymentStartDate string          `json:"employment_start_date"`
	DaysWorkedThisMonth int             `json:"days_worked_this_month"`
	TotalDaysWorked     int             `json:"total_days_worked"`
	CreatedAt           time.Time       `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                  e.ID,
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		Role:                string(e.Role),
		Salary:              e.Salary,
		PhoneNumber:         e.PhoneNumber,
		EmploymentStartDate: e.EmploymentStartDate.Format("2006-01-02"),
		DaysWorkedThisMonth: e.DaysWorkedThisMonth,
		TotalDaysWorked:     e.TotalDaysWorked,
		CreatedAt:           e.CreatedAt,
	}
}
