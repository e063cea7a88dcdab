package care

import (
	"sort"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

// EventKind tells where a calendar event came from
type EventKind string

const (
	EventKindReminder EventKind = "reminder"
	EventKindSchedule EventKind = "schedule"
	EventKindJournal  EventKind = "journal"
)

// CareEvent is a dated care item placed on the calendar
type CareEvent struct {
	Kind       EventKind         `json:"kind"`
	CareType   entities.CareType `json:"type"`
	PlantID    int64             `json:"plant_id"`
	PlantName  string            `json:"plant_name"`
	PlantEmoji string            `json:"plant_emoji"`
	DueDate    time.Time         `json:"due_date"`
	ReminderID *int64            `json:"reminder_id,omitempty"`
	Note       string            `json:"note,omitempty"`
}

// CalendarDay groups the events falling on one day of a month
type CalendarDay struct {
	Date    string      `json:"date"`
	Day     int         `json:"day"`
	Weekday string      `json:"weekday"`
	Events  []CareEvent `json:"events"`
}

// BuildMonth buckets events into every day of the month. Days without events are
// present with an empty list. Events outside the month are ignored. Within a day
// events are ordered by care type, then plant, then reminder ID.
func BuildMonth(events []CareEvent, year int, month time.Month) []CalendarDay {
	n := DaysIn(year, month)
	days := make([]CalendarDay, n)
	for i := range days {
		date := time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)
		days[i] = CalendarDay{
			Date:    DateKey(date),
			Day:     i + 1,
			Weekday: date.Weekday().String(),
			Events:  []CareEvent{},
		}
	}

	for _, e := range events {
		y, m, d := e.DueDate.Date()
		if y != year || m != month {
			continue
		}
		days[d-1].Events = append(days[d-1].Events, e)
	}

	for i := range days {
		sortEvents(days[i].Events)
	}
	return days
}

// SelectDay looks up one day of an already built month
func SelectDay(days []CalendarDay, day int) (CalendarDay, bool) {
	if day < 1 || day > len(days) {
		return CalendarDay{}, false
	}
	return days[day-1], true
}

// LeadingBlanks returns the number of grid cells before day 1 in a
// Monday-first week layout.
func LeadingBlanks(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

func sortEvents(events []CareEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.CareType != b.CareType {
			return a.CareType < b.CareType
		}
		if a.PlantID != b.PlantID {
			return a.PlantID < b.PlantID
		}
		return reminderID(a) < reminderID(b)
	})
}

func reminderID(e CareEvent) int64 {
	if e.ReminderID == nil {
		return 0
	}
	return *e.ReminderID
}
