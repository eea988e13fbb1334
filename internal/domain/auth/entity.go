package auth

import "time"

// UserAuth holds the bcrypt hash of an employee's 4-digit login PIN. One row
// per employee; setting a new PIN replaces the old one.
type UserAuth struct {
	ID         string
	EmployeeID string
	PINHash    string
	CreatedAt  time.Time
}
