package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/database"
	"github.com/plantcare/core/internal/ports"
)

const plantColumns = `id, name, species, variety, emoji, water_frequency_days, light, humidity,
	care_intervals, health, notes, purchase_date, price, photo_url, last_watered, created_at, updated_at`

// PlantRepositoryImpl implements the PlantRepository interface
type PlantRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

// NewPlantRepository creates a new plant repository. Dates read back are placed
// at midnight in loc.
func NewPlantRepository(db *database.DB, loc *time.Location) ports.PlantRepository {
	return &PlantRepositoryImpl{db: db, loc: loc}
}

func (r *PlantRepositoryImpl) Create(ctx context.Context, plant *entities.Plant) error {
	query := `
		INSERT INTO plants (name, species, variety, emoji, water_frequency_days, light, humidity,
			care_intervals, health, notes, purchase_date, price, photo_url, last_watered, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.DB.QueryRowContext(ctx, r.db.DB.Rebind(query),
		plant.Name, plant.Species, plant.Variety, plant.Emoji, plant.WateringIntervalDays,
		plant.Light, plant.Humidity, plant.Intervals, plant.Health, plant.Notes,
		formatDate(plant.PurchaseDate), plant.Price, plant.PhotoURL, formatDate(plant.LastWatered),
		formatTime(plant.CreatedAt), formatTime(plant.UpdatedAt),
	).Scan(&plant.ID)

	if err != nil {
		return fmt.Errorf("create plant: %w", err)
	}

	return nil
}

func (r *PlantRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = ?`

	var row plantRow
	err := r.db.DB.GetContext(ctx, &row, r.db.DB.Rebind(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrPlantNotFound
		}
		return nil, fmt.Errorf("get plant by id: %w", err)
	}

	return row.toEntity(r.loc), nil
}

func (r *PlantRepositoryImpl) Update(ctx context.Context, plant *entities.Plant) error {
	query := `
		UPDATE plants
		SET name = ?, species = ?, variety = ?, emoji = ?, water_frequency_days = ?, light = ?,
			humidity = ?, care_intervals = ?, health = ?, notes = ?, purchase_date = ?, price = ?,
			photo_url = ?, last_watered = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.DB.ExecContext(ctx, r.db.DB.Rebind(query),
		plant.Name, plant.Species, plant.Variety, plant.Emoji, plant.WateringIntervalDays,
		plant.Light, plant.Humidity, plant.Intervals, plant.Health, plant.Notes,
		formatDate(plant.PurchaseDate), plant.Price, plant.PhotoURL, formatDate(plant.LastWatered),
		formatTime(plant.UpdatedAt), plant.ID,
	)
	if err != nil {
		return fmt.Errorf("update plant: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update plant: %w", err)
	}
	if rows == 0 {
		return entities.ErrPlantNotFound
	}

	return nil
}

func (r *PlantRepositoryImpl) List(ctx context.Context) ([]*entities.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants ORDER BY created_at DESC, id DESC`

	var rows []plantRow
	if err := r.db.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}

	plants := make([]*entities.Plant, 0, len(rows))
	for _, row := range rows {
		plants = append(plants, row.toEntity(r.loc))
	}
	return plants, nil
}
