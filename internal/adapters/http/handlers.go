package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/logger"
)

// Handlers groups every API handler so the server can register routes in one place
type Handlers struct {
	Plants    *PlantHandler
	Reminders *ReminderHandler
	Journal   *JournalHandler
	Calendar  *CalendarHandler
}

// NewHandlers creates the API handlers on top of the services
func NewHandlers(
	plantService *services.PlantService,
	reminderService *services.ReminderService,
	journalService *services.JournalService,
	calendarService *services.CalendarService,
	logger *logger.Logger,
) *Handlers {
	log := logger.WithComponent("http")
	return &Handlers{
		Plants:    NewPlantHandler(plantService, log),
		Reminders: NewReminderHandler(reminderService, log),
		Journal:   NewJournalHandler(journalService, log),
		Calendar:  NewCalendarHandler(calendarService, log),
	}
}

// Register mounts the API routes on g
func (h *Handlers) Register(g *echo.Group) {
	plants := g.Group("/plants")
	plants.POST("", h.Plants.CreatePlant)
	plants.GET("", h.Plants.ListPlants)
	plants.GET("/:id", h.Plants.GetPlant)
	plants.PATCH("/:id", h.Plants.UpdatePlant)
	plants.POST("/:id/water", h.Plants.RecordWatering)

	reminders := g.Group("/reminders")
	reminders.POST("", h.Reminders.CreateReminder)
	reminders.GET("", h.Reminders.ListReminders)
	reminders.GET("/feed", h.Reminders.Feed)
	reminders.GET("/:id", h.Reminders.GetReminder)
	reminders.POST("/:id/complete", h.Reminders.CompleteReminder)

	journal := g.Group("/journal")
	journal.POST("", h.Journal.CreateEntry)
	journal.GET("", h.Journal.ListEntries)

	calendar := g.Group("/calendar")
	calendar.GET("/:year/:month", h.Calendar.Month)
	calendar.GET("/:year/:month/:day", h.Calendar.Day)

	g.GET("/care-types", h.Calendar.CareTypes)
}

// errorStatus maps service errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, entities.ErrPlantNotFound), errors.Is(err, entities.ErrReminderNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, entities.ErrInvalidInterval),
		errors.Is(err, entities.ErrInvalidActionDate),
		errors.Is(err, entities.ErrInvalidDate),
		errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// serviceError logs a failed call and converts it to an HTTP error. Internal
// failures are not echoed back to the client.
func serviceError(log *logger.Logger, msg string, err error, keysAndValues ...interface{}) error {
	status := errorStatus(err)
	fields := append([]interface{}{"error", err, "status", status}, keysAndValues...)
	if status >= http.StatusInternalServerError {
		log.Errorw(msg, fields...)
		return echo.NewHTTPError(status, "Internal server error")
	}
	log.Warnw(msg, fields...)
	return echo.NewHTTPError(status, err.Error())
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// bindAndValidate binds the request into req and runs the validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Request/Response types
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func newListResponse[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Total: len(data)}
}
