package care

import (
	"fmt"
	"strings"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

// DefaultRecurringTypes are the care types that reschedule themselves when no
// explicit configuration is given.
var DefaultRecurringTypes = []entities.CareType{
	entities.CareTypeWatering,
	entities.CareTypeFertilizing,
	entities.CareTypeMisting,
}

// Policy decides which care types recur after completion
type Policy struct {
	recurring map[entities.CareType]bool
}

// NewPolicy builds a recurrence policy from a list of care type tags
func NewPolicy(types ...entities.CareType) Policy {
	p := Policy{recurring: make(map[entities.CareType]bool, len(types))}
	for _, t := range types {
		t = entities.CareType(strings.ToLower(strings.TrimSpace(string(t))))
		if t != "" {
			p.recurring[t] = true
		}
	}
	return p
}

// DefaultPolicy recurs watering, fertilizing and misting
func DefaultPolicy() Policy {
	return NewPolicy(DefaultRecurringTypes...)
}

// IsRecurring reports whether completing careType may spawn a successor
func (p Policy) IsRecurring(careType entities.CareType) bool {
	return p.recurring[careType]
}

// Transition is the outcome of completing one reminder: the completed instance
// and, for recurring care, exactly one pending successor. Stores persist both
// halves together or not at all.
type Transition struct {
	Completed entities.Reminder
	Successor *entities.Reminder
}

// Complete moves a pending reminder to completed on today. When the care type
// recurs and the plant carries an interval for it, a successor is created for
// nextDueDate(today, interval). plant may be nil when the plant is unknown to the
// caller, in which case no successor is spawned.
func (p Policy) Complete(r entities.Reminder, plant *entities.Plant, today time.Time) (Transition, error) {
	if r.IsCompleted() {
		return Transition{}, fmt.Errorf("%w: reminder %d", entities.ErrAlreadyCompleted, r.ID)
	}

	completedAt := StartOfDay(today)
	r.Status = entities.ReminderStatusCompleted
	r.CompletedAt = &completedAt
	t := Transition{Completed: r}

	if plant == nil || !p.IsRecurring(r.CareType) {
		return t, nil
	}
	interval, ok := plant.IntervalFor(r.CareType)
	if !ok {
		return t, nil
	}
	due, err := NextDueDate(&completedAt, interval)
	if err != nil {
		return Transition{}, err
	}

	predecessor := r.ID
	t.Successor = &entities.Reminder{
		PlantID:       r.PlantID,
		PlantName:     r.PlantName,
		PlantEmoji:    r.PlantEmoji,
		CareType:      r.CareType,
		DueDate:       *due,
		Status:        entities.ReminderStatusPending,
		PredecessorID: &predecessor,
		CreatedAt:     today,
	}
	return t, nil
}

// Apply returns the instance set with the completed reminder replaced and the
// successor appended. The input slice is not modified.
func (t Transition) Apply(set []entities.Reminder) []entities.Reminder {
	out := make([]entities.Reminder, 0, len(set)+1)
	for _, r := range set {
		if r.ID == t.Completed.ID {
			out = append(out, t.Completed)
			continue
		}
		out = append(out, r)
	}
	if t.Successor != nil {
		out = append(out, *t.Successor)
	}
	return out
}

// Reminders lists the records touched by the transition
func (t Transition) Reminders() []entities.Reminder {
	out := []entities.Reminder{t.Completed}
	if t.Successor != nil {
		out = append(out, *t.Successor)
	}
	return out
}
