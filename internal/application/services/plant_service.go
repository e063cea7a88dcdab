package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// PlantService handles plant-related operations
type PlantService struct {
	plantRepo ports.PlantRepository
	cache     recordCache
	settings  Settings
	metrics   *Metrics
	logger    *logger.Logger
}

// NewPlantService creates a new plant service
func NewPlantService(plantRepo ports.PlantRepository, cache ports.CacheRepository, settings Settings, metrics *Metrics, logger *logger.Logger) *PlantService {
	log := logger.WithComponent("plant_service")
	return &PlantService{
		plantRepo: plantRepo,
		cache:     recordCache{cache: cache, ttl: settings.CacheTTL, logger: log},
		settings:  settings,
		metrics:   metrics,
		logger:    log,
	}
}

// CreatePlant creates a new plant. A plant without a last watering date has no
// schedule until its first watering is recorded.
func (s *PlantService) CreatePlant(ctx context.Context, req ports.CreatePlantRequest) (*entities.Plant, error) {
	now := s.settings.Clock.Now()

	plant := entities.NewPlant(strings.TrimSpace(req.Name))
	plant.Species = strings.TrimSpace(req.Species)
	plant.Variety = req.Variety
	plant.Light = req.Light
	plant.Intervals = req.CareIntervals
	plant.Notes = req.Notes
	plant.Price = req.Price
	plant.PhotoURL = req.PhotoURL
	plant.CreatedAt = now
	plant.UpdatedAt = now

	if req.Emoji != "" {
		plant.Emoji = req.Emoji
	}
	if req.WateringIntervalDays != nil {
		plant.WateringIntervalDays = *req.WateringIntervalDays
	}
	if req.Humidity != nil {
		plant.Humidity = *req.Humidity
	}
	if req.Health != nil {
		plant.Health = *req.Health
	}

	if err := validateIntervals(plant.CareProfile); err != nil {
		return nil, err
	}

	if req.PurchaseDate != nil {
		d, err := care.ParseDate(*req.PurchaseDate, s.settings.Location())
		if err != nil {
			return nil, err
		}
		plant.PurchaseDate = &d
	}

	if req.LastWatered != nil {
		d, err := care.ParseDate(*req.LastWatered, s.settings.Location())
		if err != nil {
			return nil, err
		}
		plant, err = care.RecordAction(plant, d, s.settings.Clock)
		if err != nil {
			return nil, err
		}
	}

	if err := s.plantRepo.Create(ctx, &plant); err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}
	s.cache.evict(ctx, cacheKeyPlants)

	s.logger.Infow("Plant created successfully", "plant_id", plant.ID, "name", plant.Name)

	created := care.WithNextWater(plant)
	return &created, nil
}

// GetPlant retrieves a plant by ID
func (s *PlantService) GetPlant(ctx context.Context, id int64) (*entities.Plant, error) {
	plant, err := s.plantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant %d: %w", id, err)
	}

	withNext := care.WithNextWater(*plant)
	return &withNext, nil
}

// UpdatePlant applies a partial update to a plant
func (s *PlantService) UpdatePlant(ctx context.Context, id int64, req ports.UpdatePlantRequest) (*entities.Plant, error) {
	plant, err := s.plantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant %d: %w", id, err)
	}

	if req.Name != nil {
		plant.Name = strings.TrimSpace(*req.Name)
	}
	if req.Species != nil {
		plant.Species = strings.TrimSpace(*req.Species)
	}
	if req.Variety != nil {
		plant.Variety = req.Variety
	}
	if req.Emoji != nil {
		plant.Emoji = *req.Emoji
	}
	if req.WateringIntervalDays != nil {
		plant.WateringIntervalDays = *req.WateringIntervalDays
	}
	if req.Light != nil {
		plant.Light = *req.Light
	}
	if req.Humidity != nil {
		plant.Humidity = *req.Humidity
	}
	if req.Health != nil {
		plant.Health = *req.Health
	}
	if req.Notes != nil {
		plant.Notes = *req.Notes
	}
	if req.CareIntervals != nil {
		plant.Intervals = req.CareIntervals
	}
	if req.PhotoURL != nil {
		plant.PhotoURL = req.PhotoURL
	}

	if err := validateIntervals(plant.CareProfile); err != nil {
		return nil, err
	}

	plant.UpdatedAt = s.settings.Clock.Now()

	if err := s.plantRepo.Update(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}
	// reminder rows carry the plant name and emoji
	s.cache.invalidate(ctx)

	s.logger.Infow("Plant updated successfully", "plant_id", plant.ID, "name", plant.Name)

	updated := care.WithNextWater(*plant)
	return &updated, nil
}

// ListPlants lists plants annotated with their watering urgency for today
func (s *PlantService) ListPlants(ctx context.Context) ([]ports.PlantSummary, error) {
	var plants []entities.Plant
	if !s.cache.get(ctx, cacheKeyPlants, &plants) {
		stored, err := s.plantRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list plants: %w", err)
		}
		plants = make([]entities.Plant, 0, len(stored))
		for _, p := range stored {
			plants = append(plants, *p)
		}
		s.cache.set(ctx, cacheKeyPlants, plants)
	}

	today := s.settings.today()
	out := make([]ports.PlantSummary, 0, len(plants))
	for _, p := range plants {
		p = care.WithNextWater(p)
		u := care.Classify(p.NextWater, today)
		out = append(out, ports.PlantSummary{
			Plant:    p,
			Urgency:  u,
			IsUrgent: u.IsUrgent(),
			Label:    s.settings.Locale.FormatLabel(p.NextWater, today),
		})
	}
	return out, nil
}

// RecordWatering records a watering on the requested date, or today
func (s *PlantService) RecordWatering(ctx context.Context, id int64, req ports.RecordWateringRequest) (*entities.Plant, error) {
	date, err := s.settings.parseDateOr(req.Date)
	if err != nil {
		return nil, err
	}

	plant, err := s.plantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant %d: %w", id, err)
	}

	watered, err := care.RecordAction(*plant, date, s.settings.Clock)
	if err != nil {
		return nil, err
	}
	watered.UpdatedAt = s.settings.Clock.Now()

	if err := s.plantRepo.Update(ctx, &watered); err != nil {
		return nil, fmt.Errorf("failed to record watering: %w", err)
	}
	s.cache.evict(ctx, cacheKeyPlants)
	s.metrics.wateringRecorded()

	s.logger.LogCareAction("watered", watered.ID, string(entities.CareTypeWatering), map[string]interface{}{
		"date":       care.DateKey(*watered.LastWatered),
		"next_water": care.DateKey(*watered.NextWater),
	})

	return &watered, nil
}

// validateIntervals rejects non-positive care intervals
func validateIntervals(profile entities.CareProfile) error {
	if profile.WateringIntervalDays <= 0 {
		return fmt.Errorf("%w: watering every %d days", entities.ErrInvalidInterval, profile.WateringIntervalDays)
	}
	for t, days := range profile.Intervals {
		if days <= 0 {
			return fmt.Errorf("%w: %s every %d days", entities.ErrInvalidInterval, t, days)
		}
	}
	return nil
}
