package care

import (
	"fmt"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

// NextDueDate returns the day a care action is next due. A plant that has never
// received the action has no schedule, so an absent last action yields nil.
func NextDueDate(lastAction *time.Time, intervalDays int) (*time.Time, error) {
	if intervalDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", entities.ErrInvalidInterval, intervalDays)
	}
	if lastAction == nil {
		return nil, nil
	}
	next := AddDays(*lastAction, intervalDays)
	return &next, nil
}

// WithNextWater returns a copy of p with NextWater derived from LastWatered.
// Plants with a non-positive interval get no schedule.
func WithNextWater(p entities.Plant) entities.Plant {
	next, err := NextDueDate(p.LastWatered, p.WateringIntervalDays)
	if err != nil {
		next = nil
	}
	p.NextWater = next
	return p
}

// RecordAction records a watering on actionDate and returns the updated plant.
// The input plant is not modified.
func RecordAction(p entities.Plant, actionDate time.Time, clock Clock) (entities.Plant, error) {
	if p.WateringIntervalDays <= 0 {
		return p, fmt.Errorf("%w: plant %d has interval %d", entities.ErrInvalidInterval, p.ID, p.WateringIntervalDays)
	}
	if DaysBetween(Today(clock), actionDate) > 0 {
		return p, fmt.Errorf("%w: %s", entities.ErrInvalidActionDate, DateKey(actionDate))
	}

	watered := StartOfDay(actionDate)
	next, err := NextDueDate(&watered, p.WateringIntervalDays)
	if err != nil {
		return p, err
	}

	p.LastWatered = &watered
	p.NextWater = next
	return p, nil
}
