package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantcare/core/internal/adapters/cache"
	"github.com/plantcare/core/internal/adapters/cli"
	"github.com/plantcare/core/internal/adapters/repository"
	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/infrastructure/config"
	"github.com/plantcare/core/internal/infrastructure/database"
	"github.com/plantcare/core/internal/infrastructure/logger"
	"github.com/plantcare/core/internal/infrastructure/server"
	"github.com/plantcare/core/internal/ports"
)

// Build information, set with -ldflags "-X github.com/plantcare/core/cmd/api/commands.Version=..."
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "development"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the PlantCare API server",
		Long:  "Start the PlantCare API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage database migrations (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration(database.MigrateUp)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration(database.MigrateDown)
		},
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	}
	migrateCmd.AddCommand(versionCmd)

	return migrateCmd
}

// NewFeedCommand prints today's reminder feed
func NewFeedCommand() *cobra.Command {
	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the reminder feed for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			withPlants, _ := cmd.Flags().GetBool("plants")
			return withApp(func(ctx context.Context, app *app) error {
				feed, err := app.reminders.Feed(ctx)
				if err != nil {
					return err
				}
				app.printer.Feed(feed)

				if withPlants {
					plants, err := app.plants.ListPlants(ctx)
					if err != nil {
						return err
					}
					fmt.Println()
					app.printer.Plants(plants)
				}
				return nil
			})
		},
	}

	feedCmd.Flags().Bool("plants", false, "Also list plants with their next watering date")
	return feedCmd
}

// NewCalendarCommand prints a month grid
func NewCalendarCommand() *cobra.Command {
	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the care calendar for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetString("month")
			journal, _ := cmd.Flags().GetBool("journal")

			return withApp(func(ctx context.Context, app *app) error {
				first := app.settings.Clock.Now()
				if month != "" {
					parsed, err := time.ParseInLocation("2006-01", month, app.settings.Location())
					if err != nil {
						return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
					}
					first = parsed
				}

				view, err := app.calendar.Month(ctx, first.Year(), int(first.Month()), journal)
				if err != nil {
					return err
				}
				app.printer.Month(view)
				return nil
			})
		},
	}

	calendarCmd.Flags().String("month", "", "Month to print as YYYY-MM (default current month)")
	calendarCmd.Flags().Bool("journal", false, "Include journal entries")
	return calendarCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print PlantCare version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("PlantCare %s\n", Version)
			fmt.Printf("Build Date: %s\n", BuildDate)
			fmt.Printf("Git Commit: %s\n", GitCommit)
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	settings, err := services.NewSettings(cfg)
	if err != nil {
		appLogger.Fatalw("Invalid care settings", "error", err)
	}

	store, db, err := openStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to open store", "error", err, "driver", cfg.Database.Driver)
	}
	if db != nil {
		defer db.Close()
	}

	recordCache, closeCache := openCache(cfg, appLogger)
	defer closeCache()

	srv, err := server.New(cfg, server.Dependencies{
		DB:       db,
		Store:    store,
		Cache:    recordCache,
		Settings: settings,
	}, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	appLogger.Infow("Starting PlantCare API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"driver", cfg.Database.Driver,
		"timezone", settings.Location().String(),
	)

	// Graceful shutdown setup
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("Server failed to start", "error", err)
		}
	}()

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("Server forced to shutdown", "error", err)
	}
}

// openStore opens the configured record store. SQLite databases are migrated
// on open; the returned DB is nil for the memory store.
func openStore(cfg *config.Config, appLogger *logger.Logger) (*repository.Store, *database.DB, error) {
	loc, err := cfg.Care.Location()
	if err != nil {
		return nil, nil, err
	}

	if !cfg.Database.IsSQL() {
		appLogger.Warnw("Using the in-memory store; records are lost on exit")
		return repository.NewMemoryStore(), nil, nil
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.Driver == config.DriverSQLite {
		status, err := db.Migrate(database.MigrateUp)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		appLogger.Infow("Database schema ready", "version", status.Version, "migrated", status.Changed)
	}

	return repository.NewSQLStore(db, loc), db, nil
}

// openCache connects to Redis when enabled. A failed connection falls back to
// uncached reads.
func openCache(cfg *config.Config, appLogger *logger.Logger) (ports.CacheRepository, func()) {
	if !cfg.Redis.Enabled {
		return cache.Noop{}, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	redisCache, err := cache.Connect(ctx, cfg.Redis, appLogger)
	if err != nil {
		appLogger.Warnw("Redis unavailable, continuing without cache", "error", err, "addr", cfg.Redis.GetAddr())
		return cache.Noop{}, func() {}
	}
	return redisCache, func() { _ = redisCache.Close() }
}

// app bundles the services used by the terminal commands
type app struct {
	settings  services.Settings
	plants    *services.PlantService
	reminders *services.ReminderService
	calendar  *services.CalendarService
	printer   *cli.Printer
}

func withApp(fn func(ctx context.Context, app *app) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	settings, err := services.NewSettings(cfg)
	if err != nil {
		return err
	}

	appLogger := logger.NewNop()
	store, db, err := openStore(cfg, appLogger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	noCache := cache.Noop{}
	a := &app{
		settings:  settings,
		plants:    services.NewPlantService(store.Plants, noCache, settings, nil, appLogger),
		reminders: services.NewReminderService(store.Reminders, store.Plants, noCache, settings, nil, appLogger),
		calendar:  services.NewCalendarService(store.Reminders, store.Plants, store.Journal, settings, appLogger),
		printer:   cli.NewPrinter(nil, settings.Locale),
	}

	return fn(context.Background(), a)
}

func runMigration(direction string) {
	db := openSQL()
	defer db.Close()

	status, err := db.Migrate(direction)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if !status.Changed {
		fmt.Println("No migrations to run")
	} else {
		fmt.Printf("Migration %s completed successfully (version %d)\n", direction, status.Version)
	}
}

func showMigrationVersion() {
	db := openSQL()
	defer db.Close()

	status, err := db.MigrationVersion()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", status.Version)
	fmt.Printf("Dirty: %t\n", status.Dirty)
}

func openSQL() *database.DB {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}
