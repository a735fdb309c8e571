package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/j1nxie/app-z-to-dht/internal/store/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the reference schema of the DHT store to db.
// This exists for tests and dev tooling only: a production run requires
// a store the viewer application has already initialized, and Open
// enforces that.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
