package resolver

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j1nxie/app-z-to-dht/internal/zalo"
)

const testKey = "s3cret"

func writeTestIndex(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.db")

	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_key=%s", path, url.QueryEscape(testKey)))
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE friend (userId INTEGER PRIMARY KEY, displayName TEXT)`,
		`CREATE TABLE friends_info (userId INTEGER PRIMARY KEY, displayName TEXT)`,
		`CREATE TABLE "group" (userId INTEGER PRIMARY KEY, displayName TEXT)`,
		`INSERT INTO friend VALUES (7, 'Alice')`,
		`INSERT INTO friends_info VALUES (8, 'Bob')`,
		`INSERT INTO "group" VALUES (999, 'Family')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return path
}

func TestIndexLookup(t *testing.T) {
	path := writeTestIndex(t)

	idx, err := OpenIndex([]byte(testKey), path)
	require.NoError(t, err)
	defer idx.Close()

	ctx := context.Background()

	name, err := idx.Lookup(ctx, 7, zalo.KindDM)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	// Non-contact senders live in friends_info.
	name, err = idx.Lookup(ctx, 8, zalo.KindDM)
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)

	name, err = idx.Lookup(ctx, 999, zalo.KindGroup)
	require.NoError(t, err)
	assert.Equal(t, "Family", name)
}

func TestIndexLookup_MissIsNotAnError(t *testing.T) {
	path := writeTestIndex(t)

	idx, err := OpenIndex([]byte(testKey), path)
	require.NoError(t, err)
	defer idx.Close()

	name, err := idx.Lookup(context.Background(), 12345, zalo.KindDM)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestOpenIndex_WrongKey(t *testing.T) {
	path := writeTestIndex(t)

	_, err := OpenIndex([]byte("not-the-key"), path)
	require.Error(t, err)
}

func TestNoopResolver(t *testing.T) {
	name, err := Noop{}.Lookup(context.Background(), 7, zalo.KindDM)
	require.NoError(t, err)
	assert.Empty(t, name)
}
