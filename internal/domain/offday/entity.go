package offday

import "time"

// OffDay is a request for one or more consecutive non-working days starting at
// Date. Only approved off days suppress attendance counting.
type OffDay struct {
	ID         string
	EmployeeID string

	Date     time.Time
	DayCount int
	OffType  OffType
	Reason   *string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses.
	EmployeeName *string
}

// Covers reports whether day falls inside the inclusive range
// [Date, Date + DayCount - 1]. Comparison is by calendar day.
func (o OffDay) Covers(day time.Time) bool {
	start := truncateToDay(o.Date)
	end := start.AddDate(0, 0, o.DayCount-1)
	d := truncateToDay(day)
	return !d.Before(start) && !d.After(end)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type OffType string

const (
	OffTypeFull OffType = "full"
	OffTypeHalf OffType = "half"
)

func (t OffType) Valid() bool {
	return t == OffTypeFull || t == OffTypeHalf
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusDenied
}
