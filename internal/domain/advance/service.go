package advance

import "context"

type AdvanceService interface {
	// Request files a salary advance for a staff or manager employee. Requests
	// that cannot possibly be approved are rejected up front when the advance
	// overdraft policy is strict.
	Request(ctx context.Context, req RequestAdvanceRequest) (AdvanceResponse, error)

	// Decide approves or denies a pending advance. Approval re-runs the
	// balance checks under a row lock and may auto-deny; an auto-denied
	// advance is a successful decision, not an error.
	Decide(ctx context.Context, advanceID string, req DecideAdvanceRequest) (AdvanceResponse, error)

	GetByID(ctx context.Context, advanceID string) (AdvanceResponse, error)
	ListPending(ctx context.Context) ([]AdvanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvanceResponse, error)
	ListAll(ctx context.Context) ([]AdvanceResponse, error)
}
