package messages

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
	ctx := context.Background()
	require.NoError(t, store.RunMigrations(ctx, db))

	// Parent rows for the foreign keys.
	_, err = db.ExecContext(ctx, "INSERT INTO servers (id, name, type) VALUES (999, 'Group #999', 'GROUP')")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO channels (id, server, name) VALUES (999, 999, 'Group #999')")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO users (id, name) VALUES (7, 'User #7')")
	require.NoError(t, err)

	return db
}

func TestInsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	err := repo.Insert(ctx, &models.Message{ID: 1, SenderID: 7, ChannelID: 999, Text: "hi", Timestamp: 1000})
	require.NoError(t, err)

	var text string
	var ts int64
	require.NoError(t, db.QueryRow("SELECT text, timestamp FROM messages WHERE message_id = 1").Scan(&text, &ts))
	assert.Equal(t, "hi", text)
	assert.Equal(t, int64(1000), ts)
}

func TestInsert_DuplicateIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &models.Message{ID: 1, SenderID: 7, ChannelID: 999, Text: "hi", Timestamp: 1000}))
	require.NoError(t, repo.Insert(ctx, &models.Message{ID: 1, SenderID: 7, ChannelID: 999, Text: "edited", Timestamp: 2000}))

	var text string
	require.NoError(t, db.QueryRow("SELECT text FROM messages WHERE message_id = 1").Scan(&text))
	assert.Equal(t, "hi", text)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestInsertReply(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertReply(ctx, 2, 1))
	require.NoError(t, repo.InsertReply(ctx, 2, 1))

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM message_replied_to").Scan(&n))
	assert.Equal(t, 1, n)

	var repliedTo int64
	require.NoError(t, db.QueryRow("SELECT replied_to_id FROM message_replied_to WHERE message_id = 2").Scan(&repliedTo))
	assert.Equal(t, int64(1), repliedTo)
}
