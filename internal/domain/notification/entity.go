package notification

import "time"

// Notification is a persisted event for an external dispatcher to deliver.
// The core only records the recipient's contact identifier and the outcome;
// delivery itself happens outside this system.
type Notification struct {
	ID         string
	EmployeeID *string
	Contact    string
	Type       Type
	Title      string
	Message    string

	CreatedAt time.Time
}

type Type string

const (
	TypeAdvanceDecided         Type = "advance_decided"
	TypePendingAdvancesSummary Type = "pending_advances_summary"
)
