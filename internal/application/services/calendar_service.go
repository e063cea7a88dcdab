package services

import (
	"context"
	"fmt"
	"time"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// CalendarService projects reminders, watering schedules and journal entries
// onto month grids
type CalendarService struct {
	reminderRepo ports.ReminderRepository
	plantRepo    ports.PlantRepository
	journalRepo  ports.JournalRepository
	settings     Settings
	logger       *logger.Logger
}

// NewCalendarService creates a new calendar service
func NewCalendarService(
	reminderRepo ports.ReminderRepository,
	plantRepo ports.PlantRepository,
	journalRepo ports.JournalRepository,
	settings Settings,
	logger *logger.Logger,
) *CalendarService {
	return &CalendarService{
		reminderRepo: reminderRepo,
		plantRepo:    plantRepo,
		journalRepo:  journalRepo,
		settings:     settings,
		logger:       logger.WithComponent("calendar_service"),
	}
}

// Month builds the grid of one month
func (s *CalendarService) Month(ctx context.Context, year, month int, includeJournal bool) (*ports.MonthView, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: %04d-%02d", entities.ErrInvalidDate, year, month)
	}
	m := time.Month(month)

	events, err := s.events(ctx, year, m, includeJournal)
	if err != nil {
		return nil, err
	}

	return &ports.MonthView{
		Year:          year,
		Month:         month,
		MonthName:     m.String(),
		LeadingBlanks: care.LeadingBlanks(year, m),
		Days:          care.BuildMonth(events, year, m),
	}, nil
}

// Day selects one day of a month grid
func (s *CalendarService) Day(ctx context.Context, year, month, day int, includeJournal bool) (*care.CalendarDay, error) {
	view, err := s.Month(ctx, year, month, includeJournal)
	if err != nil {
		return nil, err
	}

	selected, ok := care.SelectDay(view.Days, day)
	if !ok {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d", entities.ErrInvalidDate, year, month, day)
	}
	return &selected, nil
}

// CareTypes lists the care type descriptors labelled for the configured locale
func (s *CalendarService) CareTypes() []ports.CareTypeView {
	catalog := care.Catalog()
	out := make([]ports.CareTypeView, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, ports.CareTypeView{
			Type:  d.Type,
			Label: d.Label(s.settings.Locale.Code),
			Icon:  d.Icon,
			Color: d.Color,
		})
	}
	return out
}

func (s *CalendarService) events(ctx context.Context, year int, month time.Month, includeJournal bool) ([]care.CareEvent, error) {
	loc := s.settings.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month, care.DaysIn(year, month), 0, 0, 0, 0, loc)

	pending := entities.ReminderStatusPending
	inRange, err := s.reminderRepo.List(ctx, ports.ReminderFilter{Status: &pending, DueFrom: &first, DueTo: &last})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}

	var events []care.CareEvent
	for _, r := range inRange {
		id := r.ID
		events = append(events, care.CareEvent{
			Kind:       care.EventKindReminder,
			CareType:   r.CareType,
			PlantID:    r.PlantID,
			PlantName:  r.PlantName,
			PlantEmoji: r.PlantEmoji,
			DueDate:    r.DueDate,
			ReminderID: &id,
		})
	}

	// Pending watering reminders anywhere in time replace the derived schedule
	watering := entities.CareTypeWatering
	booked, err := s.reminderRepo.List(ctx, ports.ReminderFilter{Status: &pending, CareType: &watering})
	if err != nil {
		return nil, fmt.Errorf("failed to list watering reminders: %w", err)
	}
	wateringBooked := make(map[int64]bool, len(booked))
	for _, r := range booked {
		wateringBooked[r.PlantID] = true
	}

	plants, err := s.plantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	for _, p := range plants {
		if wateringBooked[p.ID] {
			continue
		}
		scheduled := care.WithNextWater(*p)
		if scheduled.NextWater == nil || !inMonth(*scheduled.NextWater, year, month) {
			continue
		}
		events = append(events, care.CareEvent{
			Kind:       care.EventKindSchedule,
			CareType:   entities.CareTypeWatering,
			PlantID:    p.ID,
			PlantName:  p.Name,
			PlantEmoji: p.Emoji,
			DueDate:    *scheduled.NextWater,
		})
	}

	if includeJournal {
		entries, err := s.journalRepo.List(ctx, ports.JournalFilter{})
		if err != nil {
			return nil, fmt.Errorf("failed to list journal entries: %w", err)
		}
		for _, e := range entries {
			if !inMonth(e.EntryDate, year, month) {
				continue
			}
			events = append(events, care.CareEvent{
				Kind:       care.EventKindJournal,
				CareType:   entities.CareType(e.Tag),
				PlantID:    e.PlantID,
				PlantName:  e.PlantName,
				PlantEmoji: e.PlantEmoji,
				DueDate:    e.EntryDate,
				Note:       e.Text,
			})
		}
	}

	s.logger.Debugw("Calendar events collected",
		"from", care.DateKey(first),
		"to", care.DateKey(last),
		"events", len(events),
	)
	return events, nil
}

func inMonth(t time.Time, year int, month time.Month) bool {
	y, m, _ := t.Date()
	return y == year && m == month
}
