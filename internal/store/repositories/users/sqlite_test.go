package users

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j1nxie/app-z-to-dht/internal/store"
	"github.com/j1nxie/app-z-to-dht/internal/store/models"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.RunMigrations(context.Background(), db))
	return db
}

func userName(t *testing.T, db *sql.DB, id int64) string {
	t.Helper()
	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM users WHERE id = ?", id).Scan(&name))
	return name
}

func TestUpsert_Insert(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteRepository(db)

	err := repo.Upsert(context.Background(), &models.User{ID: 7, Name: "User #7"})
	require.NoError(t, err)

	assert.Equal(t, "User #7", userName(t, db, 7))
}

func TestUpsert_PlaceholderUpgrades(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{ID: 7, Name: "User #7"}))
	require.NoError(t, repo.Upsert(ctx, &models.User{ID: 7, Name: "Alice"}))

	assert.Equal(t, "Alice", userName(t, db, 7))
}

func TestUpsert_RealNameIsKept(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{ID: 7, Name: "Alice"}))

	require.NoError(t, repo.Upsert(ctx, &models.User{ID: 7, Name: "User #7"}))
	assert.Equal(t, "Alice", userName(t, db, 7))

	require.NoError(t, repo.Upsert(ctx, &models.User{ID: 7, Name: "Bob"}))
	assert.Equal(t, "Alice", userName(t, db, 7))
}
