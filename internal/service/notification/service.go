package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/notification"
)

type NotificationServiceImpl struct {
	notification.NotificationRepository
}

// RecordAdvanceDecided implements notification.NotificationService.
func (s *NotificationServiceImpl) RecordAdvanceDecided(ctx context.Context, emp employee.Employee, adv advance.Advance) error {
	title := "Advance request denied"
	message := fmt.Sprintf("Your advance request of $%s was denied.", adv.Amount.StringFixed(2))
	if adv.Status == advance.StatusApproved {
		title = "Advance request approved"
		message = fmt.Sprintf("Your advance request of $%s was approved.", adv.Amount.StringFixed(2))
	}
	if adv.ApprovalNotes != nil && *adv.ApprovalNotes != "" {
		message += " Notes: " + *adv.ApprovalNotes
	}

	empID := emp.ID
	_, err := s.NotificationRepository.Create(ctx, notification.Notification{
		ID:         uuid.NewString(),
		EmployeeID: &empID,
		Contact:    emp.PhoneNumber,
		Type:       notification.TypeAdvanceDecided,
		Title:      title,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// RecordPendingSummary implements notification.NotificationService.
func (s *NotificationServiceImpl) RecordPendingSummary(ctx context.Context, admin employee.Employee, pending []advance.Advance) error {
	if len(pending) == 0 {
		return nil
	}

	message := fmt.Sprintf("%d advance request(s) awaiting decision.", len(pending))
	adminID := admin.ID
	_, err := s.NotificationRepository.Create(ctx, notification.Notification{
		ID:         uuid.NewString(),
		EmployeeID: &adminID,
		Contact:    admin.PhoneNumber,
		Type:       notification.TypePendingAdvancesSummary,
		Title:      "Pending advance requests",
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByEmployee implements notification.NotificationService.
func (s *NotificationServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	notifications, err := s.NotificationRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// ListAll implements notification.NotificationService.
func (s *NotificationServiceImpl) ListAll(ctx context.Context) ([]notification.Notification, error) {
	notifications, err := s.NotificationRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func NewNotificationService(notificationRepo notification.NotificationRepository) notification.NotificationService {
	return &NotificationServiceImpl{NotificationRepository: notificationRepo}
}
