package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrInvalidInterval   = errors.New("care interval must be greater than zero")
	ErrInvalidActionDate = errors.New("care action cannot be dated in the future")
	ErrAlreadyCompleted  = errors.New("reminder is already completed")
	ErrPlantNotFound     = errors.New("plant not found")
	ErrReminderNotFound  = errors.New("reminder not found")
	ErrInvalidDate       = errors.New("invalid calendar date")
)

// Enums and types
type CareType string

const (
	CareTypeWatering    CareType = "watering"
	CareTypeFertilizing CareType = "fertilizing"
	CareTypePruning     CareType = "pruning"
	CareTypeRepotting   CareType = "repotting"
	CareTypeMisting     CareType = "misting"
)

// KnownCareTypes lists the care types with catalog metadata. The domain is open:
// reminders may carry any non-empty tag.
var KnownCareTypes = []CareType{
	CareTypeWatering,
	CareTypeFertilizing,
	CareTypePruning,
	CareTypeRepotting,
	CareTypeMisting,
}

type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusCompleted ReminderStatus = "completed"
)

// Plant defaults applied on creation
const (
	DefaultEmoji                = "🌱"
	DefaultWateringIntervalDays = 7
	DefaultHumidity             = 50
	DefaultHealth               = 100
)

// CareIntervals maps a care type to its recurrence interval in days.
// Stored as a JSON object in a text column.
type CareIntervals map[CareType]int

// Value implements driver.Valuer
func (c CareIntervals) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal care intervals: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (c *CareIntervals) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan care intervals: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*c = nil
		return nil
	}
	out := CareIntervals{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("unmarshal care intervals: %w", err)
	}
	*c = out
	return nil
}

// CareProfile holds the care requirements of a plant
type CareProfile struct {
	WateringIntervalDays int           `json:"water_frequency_days"`
	Light                string        `json:"light"`
	Humidity             int           `json:"humidity"`
	Intervals            CareIntervals `json:"care_intervals"`
}

// Plant represents a plant owned by the user
type Plant struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Variety *string `json:"variety"`
	Emoji   string  `json:"emoji"`
	CareProfile
	Health       int        `json:"health"`
	Notes        string     `json:"notes"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Price        *float64   `json:"price"`
	PhotoURL     *string    `json:"photo_url"`
	LastWatered  *time.Time `json:"last_watered"`
	NextWater    *time.Time `json:"next_water"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Reminder represents a scheduled care action for one plant
type Reminder struct {
	ID            int64          `json:"id"`
	PlantID       int64          `json:"plant_id"`
	PlantName     string         `json:"plant_name"`
	PlantEmoji    string         `json:"plant_emoji"`
	CareType      CareType       `json:"type"`
	DueDate       time.Time      `json:"due_date"`
	Status        ReminderStatus `json:"status"`
	CompletedAt   *time.Time     `json:"completed_at"`
	PredecessorID *int64         `json:"predecessor_id"`
	CreatedAt     time.Time      `json:"created_at"`
}

// JournalEntry represents an observation recorded for a plant
type JournalEntry struct {
	ID         int64     `json:"id"`
	PlantID    int64     `json:"plant_id"`
	PlantName  string    `json:"plant_name"`
	PlantEmoji string    `json:"plant_emoji"`
	Tag        string    `json:"tag"`
	Text       string    `json:"text"`
	EntryDate  time.Time `json:"entry_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// Business logic methods for Plant

// IntervalFor returns the recurrence interval configured for a care type.
// Watering always uses the profile's watering interval.
func (p *Plant) IntervalFor(careType CareType) (int, bool) {
	if careType == CareTypeWatering {
		return p.WateringIntervalDays, p.WateringIntervalDays > 0
	}
	days, ok := p.Intervals[careType]
	if !ok || days <= 0 {
		return 0, false
	}
	return days, true
}

// NewPlant returns a plant carrying the creation defaults
func NewPlant(name string) Plant {
	return Plant{
		Name:  name,
		Emoji: DefaultEmoji,
		CareProfile: CareProfile{
			WateringIntervalDays: DefaultWateringIntervalDays,
			Humidity:             DefaultHumidity,
		},
		Health: DefaultHealth,
	}
}

// Business logic methods for Reminder
func (r *Reminder) IsPending() bool {
	return r.Status == ReminderStatusPending
}

func (r *Reminder) IsCompleted() bool {
	return r.Status == ReminderStatusCompleted
}
