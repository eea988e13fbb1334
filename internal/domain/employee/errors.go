package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrPhoneNumberExists = errors.New("an employee with this phone number already exists")
	ErrInvalidRole       = errors.New("role must be staff or manager")
	ErrInvalidSalary     = errors.New("salary must be greater than zero")
	ErrAdminOnly         = errors.New("admin privilege required")
)
