package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// JournalHandler handles journal requests
type JournalHandler struct {
	journalService *services.JournalService
	logger         *logger.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *services.JournalService, logger *logger.Logger) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		logger:         logger,
	}
}

// CreateEntry godoc
// @Summary Add a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param request body ports.CreateJournalEntryRequest true "Entry data"
// @Success 201 {object} entities.JournalEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /journal [post]
func (h *JournalHandler) CreateEntry(c echo.Context) error {
	var req ports.CreateJournalEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.journalService.CreateEntry(c.Request().Context(), req)
	if err != nil {
		return serviceError(h.logger, "Create journal entry failed", err, "plant_id", req.PlantID)
	}

	return c.JSON(http.StatusCreated, entry)
}

func (h *JournalHandler) ListEntries(c echo.Context) error {
	var req ports.ListJournalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entries, err := h.journalService.ListEntries(c.Request().Context(), req)
	if err != nil {
		return serviceError(h.logger, "List journal entries failed", err)
	}

	return c.JSON(http.StatusOK, newListResponse(entries))
}
