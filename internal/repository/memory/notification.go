package memory

import (
	"context"

	"github.com/salarydesk/salary-backend-go/internal/domain/notification"
)

type NotificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notifications[n.ID] = n
	r.store.notificationOrder = append(r.store.notificationOrder, n.ID)
	return n, nil
}

func (r *NotificationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(n notification.Notification) bool {
		return n.EmployeeID != nil && *n.EmployeeID == employeeID
	}), nil
}

func (r *NotificationRepository) ListAll(ctx context.Context) ([]notification.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(notification.Notification) bool { return true }), nil
}

func (r *NotificationRepository) listLocked(keep func(notification.Notification) bool) []notification.Notification {
	var out []notification.Notification
	for i := len(r.store.notificationOrder) - 1; i >= 0; i-- {
		n := r.store.notifications[r.store.notificationOrder[i]]
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
