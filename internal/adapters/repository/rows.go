package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
)

// timestampLayouts are tried in order when a driver returns timestamps as text
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	care.DateLayout,
}

// dbDate scans a calendar date stored as DATE or as YYYY-MM-DD text.
// Only the year, month and day are kept.
type dbDate struct {
	Year  int
	Month time.Month
	Day   int
	Valid bool
}

func (d *dbDate) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*d = dbDate{}
		return nil
	case time.Time:
		d.Year, d.Month, d.Day = v.Date()
		d.Valid = true
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}

	if len(raw) > len(care.DateLayout) {
		raw = raw[:len(care.DateLayout)]
	}
	t, err := time.Parse(care.DateLayout, raw)
	if err != nil {
		return fmt.Errorf("scan date %q: %w", raw, err)
	}
	d.Year, d.Month, d.Day = t.Date()
	d.Valid = true
	return nil
}

// In returns the date at midnight in loc
func (d dbDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Ptr returns nil for NULL dates
func (d dbDate) Ptr(loc *time.Location) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.In(loc)
	return &t
}

// dbTime scans a timestamp stored natively or as text
type dbTime struct {
	Time  time.Time
	Valid bool
}

func (t *dbTime) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = dbTime{}
		return nil
	case time.Time:
		t.Time, t.Valid = v, true
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}

	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("scan timestamp: unrecognised value %q", raw)
}

// formatDate renders a date argument for DATE or text columns
func formatDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return care.DateKey(*t)
}

// timestampLayout has a fixed width so text columns sort chronologically
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

type plantRow struct {
	ID                   int64                  `db:"id"`
	Name                 string                 `db:"name"`
	Species              string                 `db:"species"`
	Variety              sql.NullString         `db:"variety"`
	Emoji                string                 `db:"emoji"`
	WateringIntervalDays int                    `db:"water_frequency_days"`
	Light                string                 `db:"light"`
	Humidity             int                    `db:"humidity"`
	CareIntervals        entities.CareIntervals `db:"care_intervals"`
	Health               int                    `db:"health"`
	Notes                string                 `db:"notes"`
	PurchaseDate         dbDate                 `db:"purchase_date"`
	Price                sql.NullFloat64        `db:"price"`
	PhotoURL             sql.NullString         `db:"photo_url"`
	LastWatered          dbDate                 `db:"last_watered"`
	CreatedAt            dbTime                 `db:"created_at"`
	UpdatedAt            dbTime                 `db:"updated_at"`
}

func (r plantRow) toEntity(loc *time.Location) *entities.Plant {
	p := &entities.Plant{
		ID:      r.ID,
		Name:    r.Name,
		Species: r.Species,
		Variety: nullString(r.Variety),
		Emoji:   r.Emoji,
		CareProfile: entities.CareProfile{
			WateringIntervalDays: r.WateringIntervalDays,
			Light:                r.Light,
			Humidity:             r.Humidity,
			Intervals:            r.CareIntervals,
		},
		Health:       r.Health,
		Notes:        r.Notes,
		PurchaseDate: r.PurchaseDate.Ptr(loc),
		PhotoURL:     nullString(r.PhotoURL),
		LastWatered:  r.LastWatered.Ptr(loc),
		CreatedAt:    r.CreatedAt.Time.In(loc),
		UpdatedAt:    r.UpdatedAt.Time.In(loc),
	}
	if r.Price.Valid {
		price := r.Price.Float64
		p.Price = &price
	}
	return p
}

type reminderRow struct {
	ID            int64         `db:"id"`
	PlantID       int64         `db:"plant_id"`
	PlantName     string        `db:"plant_name"`
	PlantEmoji    string        `db:"plant_emoji"`
	CareType      string        `db:"care_type"`
	DueDate       dbDate        `db:"due_date"`
	Status        string        `db:"status"`
	CompletedAt   dbDate        `db:"completed_at"`
	PredecessorID sql.NullInt64 `db:"predecessor_id"`
	CreatedAt     dbTime        `db:"created_at"`
}

func (r reminderRow) toEntity(loc *time.Location) *entities.Reminder {
	rem := &entities.Reminder{
		ID:          r.ID,
		PlantID:     r.PlantID,
		PlantName:   r.PlantName,
		PlantEmoji:  r.PlantEmoji,
		CareType:    entities.CareType(r.CareType),
		DueDate:     r.DueDate.In(loc),
		Status:      entities.ReminderStatus(r.Status),
		CompletedAt: r.CompletedAt.Ptr(loc),
		CreatedAt:   r.CreatedAt.Time.In(loc),
	}
	if r.PredecessorID.Valid {
		id := r.PredecessorID.Int64
		rem.PredecessorID = &id
	}
	return rem
}

type journalRow struct {
	ID         int64  `db:"id"`
	PlantID    int64  `db:"plant_id"`
	PlantName  string `db:"plant_name"`
	PlantEmoji string `db:"plant_emoji"`
	Tag        string `db:"tag"`
	Text       string `db:"text"`
	EntryDate  dbDate `db:"entry_date"`
	CreatedAt  dbTime `db:"created_at"`
}

func (r journalRow) toEntity(loc *time.Location) *entities.JournalEntry {
	return &entities.JournalEntry{
		ID:         r.ID,
		PlantID:    r.PlantID,
		PlantName:  r.PlantName,
		PlantEmoji: r.PlantEmoji,
		Tag:        r.Tag,
		Text:       r.Text,
		EntryDate:  r.EntryDate.In(loc),
		CreatedAt:  r.CreatedAt.Time.In(loc),
	}
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
