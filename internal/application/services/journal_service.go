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

// JournalService handles journal entries
type JournalService struct {
	journalRepo ports.JournalRepository
	plantRepo   ports.PlantRepository
	settings    Settings
	metrics     *Metrics
	logger      *logger.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo ports.JournalRepository, plantRepo ports.PlantRepository, settings Settings, metrics *Metrics, logger *logger.Logger) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		plantRepo:   plantRepo,
		settings:    settings,
		metrics:     metrics,
		logger:      logger.WithComponent("journal_service"),
	}
}

// CreateEntry records an observation for a plant, dated today unless given
func (s *JournalService) CreateEntry(ctx context.Context, req ports.CreateJournalEntryRequest) (*entities.JournalEntry, error) {
	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrValidation)
	}

	date, err := s.settings.parseDateOr(req.Date)
	if err != nil {
		return nil, err
	}

	plant, err := s.plantRepo.GetByID(ctx, req.PlantID)
	if err != nil {
		return nil, fmt.Errorf("get plant %d: %w", req.PlantID, err)
	}

	entry := &entities.JournalEntry{
		PlantID:    plant.ID,
		PlantName:  plant.Name,
		PlantEmoji: plant.Emoji,
		Tag:        tag,
		Text:       strings.TrimSpace(req.Text),
		EntryDate:  date,
		CreatedAt:  s.settings.Clock.Now(),
	}

	if err := s.journalRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	s.metrics.journalEntryCreated()

	s.logger.Infow("Journal entry created",
		"entry_id", entry.ID,
		"plant_id", entry.PlantID,
		"tag", entry.Tag,
		"date", care.DateKey(entry.EntryDate),
	)

	return entry, nil
}

// ListEntries lists journal entries newest first, optionally for one plant
func (s *JournalService) ListEntries(ctx context.Context, req ports.ListJournalRequest) ([]*entities.JournalEntry, error) {
	var filter ports.JournalFilter
	if req.PlantID > 0 {
		id := req.PlantID
		filter.PlantID = &id
	}

	entries, err := s.journalRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}
