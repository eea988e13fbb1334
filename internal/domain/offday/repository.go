package offday

import (
	"context"
	"time"
)

type OffDayRepository interface {
	Create(ctx context.Context, o OffDay) (OffDay, error)
	GetByID(ctx context.Context, id string) (OffDay, error)
	ListAll(ctx context.Context) ([]OffDay, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]OffDay, error)
	// ListApprovedCovering returns approved off days for the employee whose
	// range could cover date.
	ListApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]OffDay, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
}
