package attendance

// Outcome classifies what the sweep did with one employee for one day.
type Outcome string

const (
	OutcomeCounted        Outcome = "counted"
	OutcomeOffDay         Outcome = "off_day"
	OutcomeNotStarted     Outcome = "not_started"
	OutcomeAlreadyCounted Outcome = "already_counted"
)

type SweepStats struct {
	Total          int `json:"total"`
	Updated        int `json:"updated"`
	OffDays        int `json:"off_days"`
	NotStarted     int `json:"not_started"`
	AlreadyCounted int `json:"already_counted"`
}
