package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/database"
	"github.com/plantcare/core/internal/ports"
)

const pgForeignKeyViolation = "23503"

const reminderSelect = `
	SELECT r.id, r.plant_id, p.name AS plant_name, p.emoji AS plant_emoji, r.care_type, r.due_date,
		r.status, r.completed_at, r.predecessor_id, r.created_at
	FROM reminders r
	JOIN plants p ON p.id = r.plant_id`

// ReminderRepositoryImpl implements the ReminderRepository interface
type ReminderRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *database.DB, loc *time.Location) ports.ReminderRepository {
	return &ReminderRepositoryImpl{db: db, loc: loc}
}

func (r *ReminderRepositoryImpl) Create(ctx context.Context, reminder *entities.Reminder) error {
	return insertReminder(ctx, r.db.DB, reminder)
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

func insertReminder(ctx context.Context, q queryer, reminder *entities.Reminder) error {
	query := `
		INSERT INTO reminders (plant_id, care_type, due_date, status, completed_at, predecessor_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	due := reminder.DueDate
	err := q.QueryRowxContext(ctx, q.Rebind(query),
		reminder.PlantID, string(reminder.CareType), formatDate(&due), string(reminder.Status),
		formatDate(reminder.CompletedAt), reminder.PredecessorID, formatTime(reminder.CreatedAt),
	).Scan(&reminder.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return entities.ErrPlantNotFound
		}
		return fmt.Errorf("create reminder: %w", err)
	}

	return nil
}

func (r *ReminderRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.Reminder, error) {
	query := reminderSelect + ` WHERE r.id = ?`

	var row reminderRow
	err := r.db.DB.GetContext(ctx, &row, r.db.DB.Rebind(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrReminderNotFound
		}
		return nil, fmt.Errorf("get reminder by id: %w", err)
	}

	return row.toEntity(r.loc), nil
}

func (r *ReminderRepositoryImpl) List(ctx context.Context, filter ports.ReminderFilter) ([]*entities.Reminder, error) {
	var (
		where []string
		args  []interface{}
	)

	if filter.Status != nil {
		where = append(where, "r.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.PlantID != nil {
		where = append(where, "r.plant_id = ?")
		args = append(args, *filter.PlantID)
	}
	if filter.CareType != nil {
		where = append(where, "r.care_type = ?")
		args = append(args, string(*filter.CareType))
	}
	if filter.DueFrom != nil {
		where = append(where, "r.due_date >= ?")
		args = append(args, formatDate(filter.DueFrom))
	}
	if filter.DueTo != nil {
		where = append(where, "r.due_date <= ?")
		args = append(args, formatDate(filter.DueTo))
	}

	query := reminderSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY r.due_date, r.id"

	var rows []reminderRow
	if err := r.db.DB.SelectContext(ctx, &rows, r.db.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	reminders := make([]*entities.Reminder, 0, len(rows))
	for _, row := range rows {
		reminders = append(reminders, row.toEntity(r.loc))
	}
	return reminders, nil
}

func (r *ReminderRepositoryImpl) ApplyCompletion(ctx context.Context, completed *entities.Reminder, successor *entities.Reminder) error {
	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		// the status guard makes a concurrent second completion a no-op
		query := `UPDATE reminders SET status = ?, completed_at = ? WHERE id = ? AND status = ?`
		result, err := tx.ExecContext(ctx, tx.Rebind(query),
			string(entities.ReminderStatusCompleted), formatDate(completed.CompletedAt),
			completed.ID, string(entities.ReminderStatusPending),
		)
		if err != nil {
			return fmt.Errorf("complete reminder: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("complete reminder: %w", err)
		}
		if rows == 0 {
			var exists int
			err := tx.GetContext(ctx, &exists, tx.Rebind(`SELECT COUNT(*) FROM reminders WHERE id = ?`), completed.ID)
			if err != nil {
				return fmt.Errorf("complete reminder: %w", err)
			}
			if exists == 0 {
				return entities.ErrReminderNotFound
			}
			return fmt.Errorf("%w: reminder %d", entities.ErrAlreadyCompleted, completed.ID)
		}

		if successor == nil {
			return nil
		}
		return insertReminder(ctx, tx, successor)
	})
}

// isForeignKeyViolation reports whether err is a foreign key violation from
// lib/pq or modernc sqlite
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgForeignKeyViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}
