package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateUp applies every pending migration. databaseURL uses the pgx5:// scheme.
func MigrateUp(databaseURL string) error {
	return runMigrations(databaseURL, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown reverts every applied migration.
func MigrateDown(databaseURL string) error {
	return runMigrations(databaseURL, func(m *migrate.Migrate) error { return m.Down() })
}

func runMigrations(databaseURL string, step func(*migrate.Migrate) error) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
