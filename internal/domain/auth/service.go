package auth

import "context"

type AuthService interface {
	// Login authenticates by first name and 4-digit PIN and returns an access
	// token plus the dashboard path for the employee's role.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// SetPIN stores a new PIN hash for the employee, replacing any old one.
	SetPIN(ctx context.Context, req SetPINRequest) error
}
