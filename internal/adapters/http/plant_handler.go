package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// PlantHandler handles plant-related requests
type PlantHandler struct {
	plantService *services.PlantService
	logger       *logger.Logger
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(plantService *services.PlantService, logger *logger.Logger) *PlantHandler {
	return &PlantHandler{
		plantService: plantService,
		logger:       logger,
	}
}

// CreatePlant godoc
// @Summary Create a new plant
// @Description Create a plant with its care profile. Without last_watered the plant has no watering schedule yet.
// @Tags plants
// @Accept json
// @Produce json
// @Param request body ports.CreatePlantRequest true "Plant data"
// @Success 201 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Router /plants [post]
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	var req ports.CreatePlantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plant, err := h.plantService.CreatePlant(c.Request().Context(), req)
	if err != nil {
		return serviceError(h.logger, "Create plant failed", err, "name", req.Name)
	}

	return c.JSON(http.StatusCreated, plant)
}

// GetPlant godoc
// @Summary Get plant by ID
// @Tags plants
// @Produce json
// @Param id path int true "Plant ID"
// @Success 200 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id} [get]
func (h *PlantHandler) GetPlant(c echo.Context) error {
	plantID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	plant, err := h.plantService.GetPlant(c.Request().Context(), plantID)
	if err != nil {
		return serviceError(h.logger, "Get plant failed", err, "plant_id", plantID)
	}

	return c.JSON(http.StatusOK, plant)
}

// UpdatePlant godoc
// @Summary Update a plant
// @Description Partially update a plant. Omitted fields are left unchanged.
// @Tags plants
// @Accept json
// @Produce json
// @Param id path int true "Plant ID"
// @Param request body ports.UpdatePlantRequest true "Fields to change"
// @Success 200 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id} [patch]
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	plantID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdatePlantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plant, err := h.plantService.UpdatePlant(c.Request().Context(), plantID, req)
	if err != nil {
		return serviceError(h.logger, "Update plant failed", err, "plant_id", plantID)
	}

	return c.JSON(http.StatusOK, plant)
}

// ListPlants godoc
// @Summary List plants
// @Description List plants, newest first, with watering urgency evaluated for today
// @Tags plants
// @Produce json
// @Success 200 {object} ListResponse[ports.PlantSummary]
// @Router /plants [get]
func (h *PlantHandler) ListPlants(c echo.Context) error {
	plants, err := h.plantService.ListPlants(c.Request().Context())
	if err != nil {
		return serviceError(h.logger, "List plants failed", err)
	}

	return c.JSON(http.StatusOK, newListResponse(plants))
}

// RecordWatering godoc
// @Summary Record a watering
// @Description Record a watering on the given date (default today) and recompute the next watering date
// @Tags plants
// @Accept json
// @Produce json
// @Param id path int true "Plant ID"
// @Param request body ports.RecordWateringRequest false "Watering date"
// @Success 200 {object} entities.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plants/{id}/water [post]
func (h *PlantHandler) RecordWatering(c echo.Context) error {
	plantID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ports.RecordWateringRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	plant, err := h.plantService.RecordWatering(c.Request().Context(), plantID, req)
	if err != nil {
		return serviceError(h.logger, "Record watering failed", err, "plant_id", plantID)
	}

	return c.JSON(http.StatusOK, plant)
}
