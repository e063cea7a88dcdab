package care

import "time"

// Urgency classifies a due date relative to the current day
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due_today"
	UrgencyUpcoming Urgency = "upcoming"
)

// Classify must be evaluated against the live clock on every read; urgency
// changes with elapsed time and is never stored.
func Classify(due *time.Time, today time.Time) Urgency {
	if due == nil {
		return UrgencyNone
	}
	switch d := DaysBetween(today, *due); {
	case d < 0:
		return UrgencyOverdue
	case d == 0:
		return UrgencyDueToday
	default:
		return UrgencyUpcoming
	}
}

// IsUrgent is true for overdue and due-today items
func (u Urgency) IsUrgent() bool {
	return u == UrgencyOverdue || u == UrgencyDueToday
}

// rank orders urgency groups in the feed
func (u Urgency) rank() int {
	switch u {
	case UrgencyOverdue:
		return 0
	case UrgencyDueToday:
		return 1
	case UrgencyUpcoming:
		return 2
	default:
		return 3
	}
}
