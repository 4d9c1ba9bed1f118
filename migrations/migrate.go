// Package migrations embeds the goose schema migrations of the backend
// (PostgreSQL) and of the client session store (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	postgresDir = "postgres"
	sqliteDir   = "sqlite"
)

var ErrNilDB = errors.New("db is nil")

// MigratePostgres applies the backend migrations.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", postgresDir)
}

// MigrateSQLite applies the client session store migrations.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", sqliteDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
