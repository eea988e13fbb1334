package payment

import "context"

type SalaryPaymentRepository interface {
	Create(ctx context.Context, p SalaryPayment) (SalaryPayment, error)
	GetByID(ctx context.Context, id string) (SalaryPayment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryPayment, error)
	ListAll(ctx context.Context) ([]SalaryPayment, error)
}
