package ports

import (
	"context"
	"errors"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

// ErrCacheMiss is returned by CacheRepository.Get when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// PlantRepository defines the interface for plant data operations
type PlantRepository interface {
	Create(ctx context.Context, plant *entities.Plant) error
	GetByID(ctx context.Context, id int64) (*entities.Plant, error)
	Update(ctx context.Context, plant *entities.Plant) error
	List(ctx context.Context) ([]*entities.Plant, error)
}

// ReminderRepository defines the interface for reminder data operations
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) error
	GetByID(ctx context.Context, id int64) (*entities.Reminder, error)
	List(ctx context.Context, filter ReminderFilter) ([]*entities.Reminder, error)
	// ApplyCompletion stores a completed reminder and its optional successor
	// atomically. It fails with entities.ErrAlreadyCompleted when the stored
	// reminder is no longer pending, in which case nothing is written.
	ApplyCompletion(ctx context.Context, completed *entities.Reminder, successor *entities.Reminder) error
}

// JournalRepository defines the interface for journal data operations
type JournalRepository interface {
	Create(ctx context.Context, entry *entities.JournalEntry) error
	List(ctx context.Context, filter JournalFilter) ([]*entities.JournalEntry, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}

// Filter types for repository queries
type ReminderFilter struct {
	Status   *entities.ReminderStatus
	PlantID  *int64
	CareType *entities.CareType
	// DueFrom and DueTo bound the due date, both inclusive
	DueFrom  *time.Time
	DueTo    *time.Time
}

type JournalFilter struct {
	PlantID *int64
}
