package auth

import "github.com/salarydesk/salary-backend-go/internal/pkg/validator"

type LoginRequest struct {
	FirstName string `json:"first_name"`
	PIN       string `json:"pin"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "PIN must be a 4-digit number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token      string `json:"token"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	Dashboard  string `json:"dashboard"`
}

type SetPINRequest struct {
	EmployeeID string `json:"employee_id"`
	PIN        string `json:"pin"`
}

func (r SetPINRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "PIN must be a 4-digit number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
