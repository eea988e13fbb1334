package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Notification, error)
	ListAll(ctx context.Context) ([]Notification, error)
}
