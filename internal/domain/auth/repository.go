package auth

import "context"

type UserAuthRepository interface {
	// Upsert replaces any existing PIN for the employee.
	Upsert(ctx context.Context, ua UserAuth) (UserAuth, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (UserAuth, error)
}
