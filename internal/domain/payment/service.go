package payment

import "context"

type PaymentService interface {
	// Record pays out an employee's salary and zeroes their used salary in the
	// same transaction. Amount defaults to the payable remaining balance.
	Record(ctx context.Context, req RecordPaymentRequest) (PaymentResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]PaymentResponse, error)
	ListAll(ctx context.Context) ([]PaymentResponse, error)
}
