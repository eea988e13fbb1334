package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salarydesk/salary-backend-go/internal/domain/notification"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, employee_id, contact, type, title, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, contact, type, title, message, created_at
	`

	var created notification.Notification
	err := q.QueryRow(ctx, query, n.ID, n.EmployeeID, n.Contact, n.Type, n.Title, n.Message).Scan(
		&created.ID, &created.EmployeeID, &created.Contact, &created.Type,
		&created.Title, &created.Message, &created.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return created, nil
}

func (r *notificationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, contact, type, title, message, created_at
		FROM notifications
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for employee: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

func (r *notificationRepositoryImpl) ListAll(ctx context.Context) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, contact, type, title, message, created_at
		FROM notifications
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

func collectNotifications(rows pgx.Rows) ([]notification.Notification, error) {
	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(
			&n.ID, &n.EmployeeID, &n.Contact, &n.Type, &n.Title, &n.Message, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}
