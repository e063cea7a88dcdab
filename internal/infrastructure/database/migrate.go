package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/plantcare/core/internal/infrastructure/config"
)

//go:embed migrations
var migrations embed.FS

// Migration directions
const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// MigrationStatus describes the schema version of a database
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// Changed is false when there was nothing to apply
	Changed bool
}

func (db *DB) migrator() (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "migrations/"+db.config.Driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	var driver migratedb.Driver
	switch db.config.Driver {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(db.DB.DB, &postgres.Config{})
	case config.DriverSQLite:
		driver, err = sqlite.WithInstance(db.DB.DB, &sqlite.Config{})
	default:
		err = fmt.Errorf("no migrations for driver %q", db.config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, db.config.Driver, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// Migrate applies all up or all down migrations
func (db *DB) Migrate(direction string) (MigrationStatus, error) {
	m, err := db.migrator()
	if err != nil {
		return MigrationStatus{}, err
	}

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return MigrationStatus{}, fmt.Errorf("unknown migration direction %q", direction)
	}

	status := MigrationStatus{Changed: true}
	if errors.Is(err, migrate.ErrNoChange) {
		status.Changed = false
	} else if err != nil {
		return MigrationStatus{}, fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, fmt.Errorf("failed to get migration version: %w", err)
	}
	status.Version = version
	status.Dirty = dirty
	return status, nil
}

// MigrationVersion reports the current schema version
func (db *DB) MigrationVersion() (MigrationStatus, error) {
	m, err := db.migrator()
	if err != nil {
		return MigrationStatus{}, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("failed to get migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}
