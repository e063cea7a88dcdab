package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/database"
	"github.com/plantcare/core/internal/ports"
)

// JournalRepositoryImpl implements the JournalRepository interface
type JournalRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *database.DB, loc *time.Location) ports.JournalRepository {
	return &JournalRepositoryImpl{db: db, loc: loc}
}

func (r *JournalRepositoryImpl) Create(ctx context.Context, entry *entities.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (plant_id, tag, text, entry_date, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	date := entry.EntryDate
	err := r.db.DB.QueryRowContext(ctx, r.db.DB.Rebind(query),
		entry.PlantID, entry.Tag, entry.Text, formatDate(&date), formatTime(entry.CreatedAt),
	).Scan(&entry.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return entities.ErrPlantNotFound
		}
		return fmt.Errorf("create journal entry: %w", err)
	}

	return nil
}

func (r *JournalRepositoryImpl) List(ctx context.Context, filter ports.JournalFilter) ([]*entities.JournalEntry, error) {
	query := `
		SELECT j.id, j.plant_id, p.name AS plant_name, p.emoji AS plant_emoji, j.tag, j.text,
			j.entry_date, j.created_at
		FROM journal_entries j
		JOIN plants p ON p.id = j.plant_id`

	var args []interface{}
	if filter.PlantID != nil {
		query += " WHERE j.plant_id = ?"
		args = append(args, *filter.PlantID)
	}
	query += " ORDER BY j.entry_date DESC, j.created_at DESC, j.id DESC"

	var rows []journalRow
	if err := r.db.DB.SelectContext(ctx, &rows, r.db.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	entries := make([]*entities.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntity(r.loc))
	}
	return entries, nil
}
