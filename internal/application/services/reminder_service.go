package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// ReminderService handles reminder-related operations
type ReminderService struct {
	reminderRepo ports.ReminderRepository
	plantRepo    ports.PlantRepository
	cache        recordCache
	settings     Settings
	metrics      *Metrics
	logger       *logger.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(
	reminderRepo ports.ReminderRepository,
	plantRepo ports.PlantRepository,
	cache ports.CacheRepository,
	settings Settings,
	metrics *Metrics,
	logger *logger.Logger,
) *ReminderService {
	log := logger.WithComponent("reminder_service")
	return &ReminderService{
		reminderRepo: reminderRepo,
		plantRepo:    plantRepo,
		cache:        recordCache{cache: cache, ttl: settings.CacheTTL, logger: log},
		settings:     settings,
		metrics:      metrics,
		logger:       log,
	}
}

// CreateReminder schedules a one-off care action for a plant
func (s *ReminderService) CreateReminder(ctx context.Context, req ports.CreateReminderRequest) (*entities.Reminder, error) {
	careType := entities.CareType(strings.ToLower(strings.TrimSpace(req.Type)))
	if careType == "" {
		return nil, fmt.Errorf("%w: empty care type", ErrValidation)
	}

	due, err := care.ParseDate(req.DueDate, s.settings.Location())
	if err != nil {
		return nil, err
	}

	plant, err := s.plantRepo.GetByID(ctx, req.PlantID)
	if err != nil {
		return nil, fmt.Errorf("get plant %d: %w", req.PlantID, err)
	}

	reminder := &entities.Reminder{
		PlantID:    plant.ID,
		PlantName:  plant.Name,
		PlantEmoji: plant.Emoji,
		CareType:   careType,
		DueDate:    due,
		Status:     entities.ReminderStatusPending,
		CreatedAt:  s.settings.Clock.Now(),
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	s.cache.evict(ctx, cacheKeyPendingReminder)
	s.metrics.reminderCreated(careType)

	s.logger.Infow("Reminder created successfully",
		"reminder_id", reminder.ID,
		"plant_id", reminder.PlantID,
		"type", reminder.CareType,
		"due_date", care.DateKey(reminder.DueDate),
	)

	return reminder, nil
}

// GetReminder retrieves a reminder by ID
func (s *ReminderService) GetReminder(ctx context.Context, id int64) (*entities.Reminder, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reminder %d: %w", id, err)
	}
	return reminder, nil
}

// ListReminders lists reminders by status: pending (default), completed or all
func (s *ReminderService) ListReminders(ctx context.Context, req ports.ListRemindersRequest) ([]*entities.Reminder, error) {
	var filter ports.ReminderFilter
	switch req.Status {
	case "", string(entities.ReminderStatusPending):
		status := entities.ReminderStatusPending
		filter.Status = &status
	case string(entities.ReminderStatusCompleted):
		status := entities.ReminderStatusCompleted
		filter.Status = &status
	case "all":
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	reminders, err := s.reminderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// Feed returns the pending reminders classified and ordered for today
func (s *ReminderService) Feed(ctx context.Context) (*ports.FeedResponse, error) {
	pending, err := s.pendingReminders(ctx)
	if err != nil {
		return nil, err
	}

	today := s.settings.today()
	items := care.BuildFeed(pending, today, s.settings.Locale)

	return &ports.FeedResponse{
		Today:       care.DateKey(today),
		Items:       items,
		UrgentCount: care.UrgentCount(items),
	}, nil
}

// CompleteReminder completes a pending reminder. For recurring care with a
// configured interval the successor is stored in the same write.
func (s *ReminderService) CompleteReminder(ctx context.Context, id int64) (*ports.CompletionResponse, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reminder %d: %w", id, err)
	}

	plant, err := s.plantRepo.GetByID(ctx, reminder.PlantID)
	if err != nil && !errors.Is(err, entities.ErrPlantNotFound) {
		return nil, fmt.Errorf("get plant %d: %w", reminder.PlantID, err)
	}

	plantID := reminder.PlantID
	stored, err := s.reminderRepo.List(ctx, ports.ReminderFilter{PlantID: &plantID})
	if err != nil {
		return nil, fmt.Errorf("list plant reminders: %w", err)
	}
	set := make([]entities.Reminder, 0, len(stored))
	for _, r := range stored {
		set = append(set, *r)
	}

	transition, err := s.settings.Policy.Complete(*reminder, plant, s.settings.today())
	if err != nil {
		return nil, err
	}

	if err := s.reminderRepo.ApplyCompletion(ctx, &transition.Completed, transition.Successor); err != nil {
		if errors.Is(err, entities.ErrAlreadyCompleted) || errors.Is(err, entities.ErrReminderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to complete reminder: %w", err)
	}
	s.cache.evict(ctx, cacheKeyPendingReminder)
	s.metrics.reminderCompleted(reminder.CareType, transition.Successor != nil)

	metadata := map[string]interface{}{
		"reminder_id": reminder.ID,
		"due_date":    care.DateKey(reminder.DueDate),
	}
	if transition.Successor != nil {
		metadata["successor_id"] = transition.Successor.ID
		metadata["successor_due"] = care.DateKey(transition.Successor.DueDate)
	}
	s.logger.LogCareAction("completed", reminder.PlantID, string(reminder.CareType), metadata)

	return &ports.CompletionResponse{
		Completed: transition.Completed,
		Successor: transition.Successor,
		Reminders: transition.Apply(set),
	}, nil
}

// pendingReminders reads pending records through the cache
func (s *ReminderService) pendingReminders(ctx context.Context) ([]entities.Reminder, error) {
	var pending []entities.Reminder
	if s.cache.get(ctx, cacheKeyPendingReminder, &pending) {
		return pending, nil
	}

	status := entities.ReminderStatusPending
	stored, err := s.reminderRepo.List(ctx, ports.ReminderFilter{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}

	pending = make([]entities.Reminder, 0, len(stored))
	for _, r := range stored {
		pending = append(pending, *r)
	}
	s.cache.set(ctx, cacheKeyPendingReminder, pending)
	return pending, nil
}
