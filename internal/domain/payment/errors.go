package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("salary payment not found")
	ErrAdminOnly       = errors.New("only admins can record salary payments")
	ErrInvalidAmount   = errors.New("payment amount cannot be negative")
)
