package offday

import "context"

type OffDayService interface {
	Request(ctx context.Context, req RequestOffDayRequest) (OffDayResponse, error)

	// Decide approves or denies a pending off-day request. Decided requests
	// are final.
	Decide(ctx context.Context, offDayID string, req DecideOffDayRequest) (OffDayResponse, error)

	ListAll(ctx context.Context) ([]OffDayResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]OffDayResponse, error)
}
