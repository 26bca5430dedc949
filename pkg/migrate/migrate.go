package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MigrationsDir is the path of the embedded migration files.
const MigrationsDir = "migrations"

// Run executes a goose command against the embedded migration set. The
// migrations ship inside the binary so a desktop install never depends on a
// migrations directory being present on disk.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, MigrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Up migrates the store to the latest schema version.
func Up(ctx context.Context, db *sql.DB) error {
	return Run(ctx, db, "up")
}
