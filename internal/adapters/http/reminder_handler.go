package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// ReminderHandler handles reminder requests
type ReminderHandler struct {
	reminderService *services.ReminderService
	logger          *logger.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService *services.ReminderService, logger *logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger,
	}
}

// CreateReminder godoc
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body ports.CreateReminderRequest true "Reminder data"
// @Success 201 {object} entities.Reminder
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	var req ports.CreateReminderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reminder, err := h.reminderService.CreateReminder(c.Request().Context(), req)
	if err != nil {
		return serviceError(h.logger, "Create reminder failed", err, "plant_id", req.PlantID)
	}

	return c.JSON(http.StatusCreated, reminder)
}

// GetReminder godoc
// @Summary Get reminder by ID
// @Tags reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} entities.Reminder
// @Failure 404 {object} ErrorResponse
// @Router /reminders/{id} [get]
func (h *ReminderHandler) GetReminder(c echo.Context) error {
	reminderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	reminder, err := h.reminderService.GetReminder(c.Request().Context(), reminderID)
	if err != nil {
		return serviceError(h.logger, "Get reminder failed", err, "reminder_id", reminderID)
	}

	return c.JSON(http.StatusOK, reminder)
}

// ListReminders godoc
// @Summary List reminders
// @Tags reminders
// @Produce json
// @Param status query string false "pending (default), completed or all"
// @Success 200 {object} ListResponse[entities.Reminder]
// @Failure 400 {object} ErrorResponse
// @Router /reminders [get]
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	var req ports.ListRemindersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reminders, err := h.reminderService.ListReminders(c.Request().Context(), req)
	if err != nil {
		return serviceError(h.logger, "List reminders failed", err, "status", req.Status)
	}

	return c.JSON(http.StatusOK, newListResponse(reminders))
}

// Feed godoc
// @Summary Reminder feed
// @Description Pending reminders classified against today, overdue first
// @Tags reminders
// @Produce json
// @Success 200 {object} ports.FeedResponse
// @Router /reminders/feed [get]
func (h *ReminderHandler) Feed(c echo.Context) error {
	feed, err := h.reminderService.Feed(c.Request().Context())
	if err != nil {
		return serviceError(h.logger, "Build feed failed", err)
	}

	return c.JSON(http.StatusOK, feed)
}

// CompleteReminder godoc
// @Summary Complete a reminder
// @Description Mark a pending reminder completed. Recurring care schedules its next occurrence.
// @Tags reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} ports.CompletionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reminders/{id}/complete [post]
func (h *ReminderHandler) CompleteReminder(c echo.Context) error {
	reminderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.reminderService.CompleteReminder(c.Request().Context(), reminderID)
	if err != nil {
		return serviceError(h.logger, "Complete reminder failed", err, "reminder_id", reminderID)
	}

	return c.JSON(http.StatusOK, result)
}
