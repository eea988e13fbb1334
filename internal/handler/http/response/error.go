package response

import (
	"errors"
	"net/http"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/auth"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/offday"
	"github.com/salarydesk/salary-backend-go/internal/domain/payment"
	"github.com/salarydesk/salary-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrPINNotSet):
		Unauthorized(w, "No PIN set for this employee")
	case errors.Is(err, auth.ErrInvalidPIN):
		BadRequest(w, "PIN must be a 4-digit number", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, employee.ErrPhoneNumberExists):
		Conflict(w, "An employee with this phone number already exists")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Role must be staff or manager", nil)
	case errors.Is(err, employee.ErrInvalidSalary):
		BadRequest(w, "Salary must be greater than zero", nil)
	case errors.Is(err, employee.ErrAdminOnly):
		Forbidden(w, "Admin privilege required")

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance request not found")
	case errors.Is(err, advance.ErrAlreadyDecided):
		Conflict(w, "Advance request already decided")
	case errors.Is(err, advance.ErrStaffOrManagerOnly):
		Forbidden(w, "Only staff and managers can request advances")
	case errors.Is(err, advance.ErrInvalidAmount):
		BadRequest(w, "Advance amount must be greater than zero", nil)
	case errors.Is(err, advance.ErrNoRemainingSalary):
		BadRequest(w, "No remaining salary available for an advance", nil)
	case errors.Is(err, advance.ErrExceedsRemaining):
		BadRequest(w, "Advance amount exceeds remaining salary", nil)

	// Bill domain errors
	case errors.Is(err, bill.ErrBillNotFound):
		NotFound(w, "Bill not found")
	case errors.Is(err, bill.ErrManagerOrAdminOnly):
		Forbidden(w, "Only managers or admins can record bills")
	case errors.Is(err, bill.ErrCannotBillSelf):
		BadRequest(w, "Managers cannot record bills for themselves", nil)
	case errors.Is(err, bill.ErrExceedsSalary):
		BadRequest(w, "Bill would push used salary past base salary", nil)

	// Off day domain errors
	case errors.Is(err, offday.ErrOffDayNotFound):
		NotFound(w, "Off day request not found")
	case errors.Is(err, offday.ErrAlreadyDecided):
		Conflict(w, "Off day request already decided")
	case errors.Is(err, offday.ErrInvalidRange):
		BadRequest(w, "Day count must be at least 1", nil)
	case errors.Is(err, offday.ErrInvalidOffType):
		BadRequest(w, "Off type must be full or half", nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Salary payment not found")
	case errors.Is(err, payment.ErrAdminOnly):
		Forbidden(w, "Only admins can record salary payments")
	case errors.Is(err, payment.ErrInvalidAmount):
		BadRequest(w, "Payment amount cannot be negative", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
