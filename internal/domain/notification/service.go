package notification

import (
	"context"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
)

// NotificationService records delivery-ready notification rows. Dispatching
// them to a real channel happens outside this system.
type NotificationService interface {
	// RecordAdvanceDecided persists the outcome of an advance decision
	// addressed to the requesting employee.
	RecordAdvanceDecided(ctx context.Context, emp employee.Employee, adv advance.Advance) error

	// RecordPendingSummary persists a digest of pending advances addressed to
	// the admin.
	RecordPendingSummary(ctx context.Context, admin employee.Employee, pending []advance.Advance) error

	ListByEmployee(ctx context.Context, employeeID string) ([]Notification, error)
	ListAll(ctx context.Context) ([]Notification, error)
}
