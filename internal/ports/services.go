package ports

import (
	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
)

// Request/Response Types

// Plant related types

// CreatePlantRequest creates a plant. Absent interval and humidity take the
// creation defaults; an explicit non-positive interval is rejected.
type CreatePlantRequest struct {
	Name                 string                 `json:"name" validate:"required,max=200"`
	Species              string                 `json:"species" validate:"max=200"`
	Variety              *string                `json:"variety" validate:"omitempty,max=200"`
	Emoji                string                 `json:"emoji" validate:"max=16"`
	WateringIntervalDays *int                   `json:"water_frequency_days" validate:"omitempty,lte=365"`
	Light                string                 `json:"light" validate:"max=50"`
	Humidity             *int                   `json:"humidity" validate:"omitempty,gte=0,lte=100"`
	Health               *int                   `json:"health" validate:"omitempty,gte=0,lte=100"`
	Notes                string                 `json:"notes" validate:"max=5000"`
	CareIntervals        entities.CareIntervals `json:"care_intervals"`
	PurchaseDate         *string                `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Price                *float64               `json:"price" validate:"omitempty,gte=0"`
	PhotoURL             *string                `json:"photo_url" validate:"omitempty,url"`
	LastWatered          *string                `json:"last_watered" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePlantRequest carries a partial update; absent fields are left unchanged.
// A non-positive interval is rejected by the service with ErrInvalidInterval.
type UpdatePlantRequest struct {
	Name                 *string                `json:"name" validate:"omitempty,max=200"`
	Species              *string                `json:"species" validate:"omitempty,max=200"`
	Variety              *string                `json:"variety" validate:"omitempty,max=200"`
	Emoji                *string                `json:"emoji" validate:"omitempty,max=16"`
	WateringIntervalDays *int                   `json:"water_frequency_days"`
	Light                *string                `json:"light" validate:"omitempty,max=50"`
	Humidity             *int                   `json:"humidity" validate:"omitempty,gte=0,lte=100"`
	Health               *int                   `json:"health" validate:"omitempty,gte=0,lte=100"`
	Notes                *string                `json:"notes" validate:"omitempty,max=5000"`
	CareIntervals        entities.CareIntervals `json:"care_intervals"`
	PhotoURL             *string                `json:"photo_url" validate:"omitempty,url"`
}

type RecordWateringRequest struct {
	// Date defaults to today when empty
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// PlantSummary is a plant annotated with its watering urgency at read time
type PlantSummary struct {
	entities.Plant
	Urgency  care.Urgency `json:"urgency"`
	IsUrgent bool         `json:"urgent"`
	Label    string       `json:"water_label"`
}

// Reminder related types
type CreateReminderRequest struct {
	PlantID int64  `json:"plant_id" validate:"required,gt=0"`
	Type    string `json:"type" validate:"required,max=50"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type ListRemindersRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending completed all"`
}

type FeedResponse struct {
	Today       string          `json:"today"`
	Items       []care.FeedItem `json:"items"`
	UrgentCount int             `json:"urgent_count"`
}

// CompletionResponse is the plant's reminder set after a completion
type CompletionResponse struct {
	Completed entities.Reminder   `json:"completed"`
	Successor *entities.Reminder  `json:"successor"`
	Reminders []entities.Reminder `json:"reminders"`
}

// Journal related types
type CreateJournalEntryRequest struct {
	PlantID int64  `json:"plant_id" validate:"required,gt=0"`
	Tag     string `json:"tag" validate:"required,max=50"`
	Text    string `json:"text" validate:"max=5000"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ListJournalRequest struct {
	PlantID int64 `query:"plant_id" validate:"gte=0"`
}

// Calendar related types
type MonthView struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	MonthName     string             `json:"month_name"`
	LeadingBlanks int                `json:"leading_blanks"`
	Days          []care.CalendarDay `json:"days"`
}

type CareTypeView struct {
	Type  entities.CareType `json:"type"`
	Label string            `json:"label"`
	Icon  string            `json:"icon"`
	Color string            `json:"color"`
}
