package repository

import (
	"time"

	"github.com/plantcare/core/internal/infrastructure/database"
	"github.com/plantcare/core/internal/ports"
)

// Store groups the record stores the services depend on
type Store struct {
	Plants    ports.PlantRepository
	Reminders ports.ReminderRepository
	Journal   ports.JournalRepository
}

// NewSQLStore creates stores backed by a SQL database
func NewSQLStore(db *database.DB, loc *time.Location) *Store {
	return &Store{
		Plants:    NewPlantRepository(db, loc),
		Reminders: NewReminderRepository(db, loc),
		Journal:   NewJournalRepository(db, loc),
	}
}

// NewMemoryStore creates stores that live in process memory only
func NewMemoryStore() *Store {
	db := newMemoryDB()
	return &Store{
		Plants:    memoryPlants{db: db},
		Reminders: memoryReminders{db: db},
		Journal:   memoryJournal{db: db},
	}
}
