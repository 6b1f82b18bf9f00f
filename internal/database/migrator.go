package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	tern "github.com/jackc/tern/v2/migrate"
)

// Embed all SQL files at compile time so the binary carries its schema.
//
//   - migrations/postgres: tern format (NNN_name.sql)
//   - migrations/sqlite: golang-migrate format (NNNNNN_name.up.sql / .down.sql)
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migrate brings the schema up to the latest version.
//
// It runs on the Database's own handle: for an in-memory SQLite database a
// separate connection would see an empty, unrelated database.
func (db *Database) Migrate(ctx context.Context) error {
	if db.Pool != nil {
		return db.migratePostgres(ctx)
	}
	return db.migrateSQLite()
}

// migratePostgres runs the tern migrations on a connection borrowed from the pool.
//
// The migration version is stored in the schema_version table.
func (db *Database) migratePostgres(ctx context.Context) error {
	poolConn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection for migrations: %w", err)
	}
	defer poolConn.Release()

	m, err := tern.NewMigrator(ctx, poolConn.Conn(), "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		db.log.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		db.log.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// migrateSQLite runs the golang-migrate migrations.
//
// The migrate instance is intentionally not closed: closing it would
// close the shared *sql.DB as well.
func (db *Database) migrateSQLite() error {
	driver, err := sqlite3.WithInstance(db.SQL.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrations, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			db.log.Info().Msg("database schema up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("reading migration version: %w", err)
	}

	db.log.Info().Msgf("migrated database schema to version %d", version)
	return nil
}
