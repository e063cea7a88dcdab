package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/ports"
)

// memoryDB holds every record of the in-process store behind one lock so that
// completions and their successors are applied atomically.
type memoryDB struct {
	mu        sync.RWMutex
	plants    map[int64]entities.Plant
	reminders map[int64]entities.Reminder
	journal   map[int64]entities.JournalEntry
	lastID    struct{ plant, reminder, journal int64 }
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		plants:    make(map[int64]entities.Plant),
		reminders: make(map[int64]entities.Reminder),
		journal:   make(map[int64]entities.JournalEntry),
	}
}

// withPlant fills the denormalised plant fields of a reminder
func (m *memoryDB) withPlant(r entities.Reminder) entities.Reminder {
	if p, ok := m.plants[r.PlantID]; ok {
		r.PlantName = p.Name
		r.PlantEmoji = p.Emoji
	}
	return r
}

type memoryPlants struct{ db *memoryDB }

func (s memoryPlants) Create(ctx context.Context, plant *entities.Plant) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.lastID.plant++
	plant.ID = s.db.lastID.plant
	stored := *plant
	stored.NextWater = nil
	s.db.plants[plant.ID] = stored
	return nil
}

func (s memoryPlants) GetByID(ctx context.Context, id int64) (*entities.Plant, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	p, ok := s.db.plants[id]
	if !ok {
		return nil, entities.ErrPlantNotFound
	}
	return &p, nil
}

func (s memoryPlants) Update(ctx context.Context, plant *entities.Plant) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.plants[plant.ID]; !ok {
		return entities.ErrPlantNotFound
	}
	stored := *plant
	stored.NextWater = nil
	s.db.plants[plant.ID] = stored
	return nil
}

func (s memoryPlants) List(ctx context.Context) ([]*entities.Plant, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]*entities.Plant, 0, len(s.db.plants))
	for _, p := range s.db.plants {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type memoryReminders struct{ db *memoryDB }

func (s memoryReminders) Create(ctx context.Context, reminder *entities.Reminder) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	return s.insert(reminder)
}

// insert must be called with the write lock held
func (s memoryReminders) insert(reminder *entities.Reminder) error {
	if _, ok := s.db.plants[reminder.PlantID]; !ok {
		return entities.ErrPlantNotFound
	}
	s.db.lastID.reminder++
	reminder.ID = s.db.lastID.reminder
	*reminder = s.db.withPlant(*reminder)
	s.db.reminders[reminder.ID] = *reminder
	return nil
}

func (s memoryReminders) GetByID(ctx context.Context, id int64) (*entities.Reminder, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	r, ok := s.db.reminders[id]
	if !ok {
		return nil, entities.ErrReminderNotFound
	}
	r = s.db.withPlant(r)
	return &r, nil
}

func (s memoryReminders) List(ctx context.Context, filter ports.ReminderFilter) ([]*entities.Reminder, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]*entities.Reminder, 0, len(s.db.reminders))
	for _, r := range s.db.reminders {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.PlantID != nil && r.PlantID != *filter.PlantID {
			continue
		}
		if filter.CareType != nil && r.CareType != *filter.CareType {
			continue
		}
		if filter.DueFrom != nil && care.DaysBetween(*filter.DueFrom, r.DueDate) < 0 {
			continue
		}
		if filter.DueTo != nil && care.DaysBetween(r.DueDate, *filter.DueTo) < 0 {
			continue
		}
		r := s.db.withPlant(r)
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool {
		if d := care.DaysBetween(out[i].DueDate, out[j].DueDate); d != 0 {
			return d > 0
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s memoryReminders) ApplyCompletion(ctx context.Context, completed *entities.Reminder, successor *entities.Reminder) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	current, ok := s.db.reminders[completed.ID]
	if !ok {
		return entities.ErrReminderNotFound
	}
	if current.IsCompleted() {
		return fmt.Errorf("%w: reminder %d", entities.ErrAlreadyCompleted, completed.ID)
	}

	if successor != nil {
		if err := s.insert(successor); err != nil {
			return err
		}
	}

	current.Status = entities.ReminderStatusCompleted
	current.CompletedAt = completed.CompletedAt
	s.db.reminders[current.ID] = current
	return nil
}

type memoryJournal struct{ db *memoryDB }

func (s memoryJournal) Create(ctx context.Context, entry *entities.JournalEntry) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.plants[entry.PlantID]
	if !ok {
		return entities.ErrPlantNotFound
	}
	s.db.lastID.journal++
	entry.ID = s.db.lastID.journal
	entry.PlantName = p.Name
	entry.PlantEmoji = p.Emoji
	s.db.journal[entry.ID] = *entry
	return nil
}

func (s memoryJournal) List(ctx context.Context, filter ports.JournalFilter) ([]*entities.JournalEntry, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]*entities.JournalEntry, 0, len(s.db.journal))
	for _, e := range s.db.journal {
		if filter.PlantID != nil && e.PlantID != *filter.PlantID {
			continue
		}
		if p, ok := s.db.plants[e.PlantID]; ok {
			e.PlantName = p.Name
			e.PlantEmoji = p.Emoji
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if d := care.DaysBetween(a.EntryDate, b.EntryDate); d != 0 {
			return d < 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}
