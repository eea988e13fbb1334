package employee

import "context"

type EmployeeService interface {
	// Create registers a staff or manager employee. Admins are seeded.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}
