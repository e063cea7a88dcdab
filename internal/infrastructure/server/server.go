package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/plantcare/core/docs"
	httpHandlers "github.com/plantcare/core/internal/adapters/http"
	"github.com/plantcare/core/internal/adapters/repository"
	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/infrastructure/config"
	"github.com/plantcare/core/internal/infrastructure/database"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/ports"
)

// Server represents the HTTP server
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   *logger.Logger
	db       *database.DB
	cache    ports.CacheRepository
	registry *prometheus.Registry
}

// Dependencies are the collaborators the server wires into its services.
// DB is nil when records live in the memory store.
type Dependencies struct {
	DB       *database.DB
	Store    *repository.Store
	Cache    ports.CacheRepository
	Settings services.Settings
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, deps Dependencies, appLogger *logger.Logger) (*Server, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("server requires a record store")
	}

	e := echo.New()

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	server := &Server{
		echo:     e,
		config:   cfg,
		logger:   appLogger,
		db:       deps.DB,
		cache:    deps.Cache,
		registry: prometheus.NewRegistry(),
	}

	// Initialize services
	metrics := services.NewMetrics(server.registry)
	store := deps.Store
	plantService := services.NewPlantService(store.Plants, deps.Cache, deps.Settings, metrics, appLogger)
	reminderService := services.NewReminderService(store.Reminders, store.Plants, deps.Cache, deps.Settings, metrics, appLogger)
	journalService := services.NewJournalService(store.Journal, store.Plants, deps.Settings, metrics, appLogger)
	calendarService := services.NewCalendarService(store.Reminders, store.Plants, store.Journal, deps.Settings, appLogger)

	// Initialize handlers
	handlers := httpHandlers.NewHandlers(plantService, reminderService, journalService, calendarService, appLogger)

	// Setup middleware
	server.setupMiddleware()

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	// Setup routes
	server.setupRoutes(handlers)

	return server, nil
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(handlers *httpHandlers.Handlers) {
	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes
	handlers.Register(s.echo.Group("/api/v1"))
}

// setupMetrics exposes the registry on /metrics. The HTTP collectors are
// installed by the metrics middleware.
func (s *Server) setupMetrics() {
	s.echo.Use(s.metricsMiddleware())

	metricsHandler := promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	// Database health check
	if s.db == nil {
		checks["database"] = map[string]interface{}{
			"status": "ok",
			"driver": config.DriverMemory,
		}
	} else if err := s.db.HealthCheck(); err != nil {
		status = "error"
		checks["database"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["database"] = map[string]interface{}{
			"status": "ok",
			"stats":  s.db.GetConnectionInfo(),
		}
	}

	// Cache health check; a failing cache degrades reads but does not fail the check
	if s.config.Redis.Enabled && s.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = map[string]interface{}{
				"status": "degraded",
				"error":  err.Error(),
			}
		} else {
			checks["cache"] = map[string]interface{}{
				"status": "ok",
				"addr":   s.config.Redis.GetAddr(),
			}
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
			"go":  "1.21",
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	// Check if server is ready to accept requests
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "not_ready",
				"reason": "database_not_ready",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)

	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout
	s.echo.Server.IdleTimeout = s.config.Server.IdleTimeout

	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler handles HTTP errors
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  interface{}
		)

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			msg = map[string]interface{}{"error": he.Message}
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		} else if e, ok := err.(validator.ValidationErrors); ok {
			code = http.StatusBadRequest
			msg = map[string]string{"error": "validation failed", "details": e.Error()}
		} else {
			msg = map[string]string{"error": http.StatusText(code)}
		}

		if code == http.StatusInternalServerError {
			logger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		// Send response
		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, msg)
			}
			if err != nil {
				logger.Errorw("Error sending response", "error", err)
			}
		}
	}
}
