package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/infrastructure/logger"
)

// CalendarHandler serves month grids and the care type table
type CalendarHandler struct {
	calendarService *services.CalendarService
	logger          *logger.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService *services.CalendarService, logger *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}
}

// Month godoc
// @Summary Month grid
// @Description Care events bucketed into every day of the month
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param journal query bool false "Include journal entries"
// @Success 200 {object} ports.MonthView
// @Failure 400 {object} ErrorResponse
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) Month(c echo.Context) error {
	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}

	view, err := h.calendarService.Month(c.Request().Context(), year, month, includeJournal(c))
	if err != nil {
		return serviceError(h.logger, "Build month failed", err, "year", year, "month", month)
	}

	return c.JSON(http.StatusOK, view)
}

// Day godoc
// @Summary Calendar day
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param day path int true "Day of month"
// @Param journal query bool false "Include journal entries"
// @Success 200 {object} care.CalendarDay
// @Failure 400 {object} ErrorResponse
// @Router /calendar/{year}/{month}/{day} [get]
func (h *CalendarHandler) Day(c echo.Context) error {
	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid day")
	}

	selected, err := h.calendarService.Day(c.Request().Context(), year, month, day, includeJournal(c))
	if err != nil {
		return serviceError(h.logger, "Select day failed", err, "year", year, "month", month, "day", day)
	}

	return c.JSON(http.StatusOK, selected)
}

// CareTypes godoc
// @Summary Care type descriptors
// @Tags calendar
// @Produce json
// @Success 200 {array} ports.CareTypeView
// @Router /care-types [get]
func (h *CalendarHandler) CareTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.calendarService.CareTypes())
}

func yearMonth(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid year")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid month")
	}
	return year, month, nil
}

func includeJournal(c echo.Context) bool {
	v, _ := strconv.ParseBool(c.QueryParam("journal"))
	return v
}
