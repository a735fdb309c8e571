// Package store opens the DHT viewer's SQLite database. The importer
// never creates or migrates that schema — the viewer owns it, and a
// metadata sentinel written at initialization is the precondition for
// any import.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/j1nxie/app-z-to-dht/internal/common"

	_ "modernc.org/sqlite"
)

// Open opens the target store at path and verifies the initialization
// sentinel. A database without the sentinel (or without a metadata table
// at all) yields ErrStoreNotInitialized.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	var version string
	err = db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'version'`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		db.Close()
		return nil, common.ErrStoreNotInitialized
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStoreNotInitialized, err)
	}

	return db, nil
}
