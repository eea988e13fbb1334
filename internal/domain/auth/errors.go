package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPINNotSet          = errors.New("no PIN set for this employee")
	ErrInvalidPIN         = errors.New("PIN must be a 4-digit number")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
