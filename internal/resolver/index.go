package resolver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/j1nxie/app-z-to-dht/internal/zalo"

	_ "github.com/xeodou/go-sqlcipher"
)

// Index resolves names from a SQLCipher-encrypted Zalo contacts export.
// The export keeps direct contacts in `friend`, non-contact senders in
// `friends_info` and group chats in `group`, all keyed by userId with a
// displayName column.
type Index struct {
	db *sql.DB
}

// OpenIndex opens the contacts index at path. The backup passphrase is
// handed to SQLCipher as the raw key material via the _key DSN
// parameter; SQLCipher runs its own KDF over it.
func OpenIndex(passphrase []byte, path string) (*Index, error) {
	dsn := fmt.Sprintf("%s?_key=%s", path, url.QueryEscape(string(passphrase)))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts index: %w", err)
	}

	// A wrong key shows up as an unreadable schema on first query.
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master`).Scan(&n); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read contacts index (wrong passphrase?): %w", err)
	}

	return &Index{db: db}, nil
}

func (i *Index) Close() error {
	return i.db.Close()
}

func (i *Index) Lookup(ctx context.Context, id int64, kind zalo.Kind) (string, error) {
	var (
		name string
		err  error
	)
	if kind == zalo.KindGroup {
		err = i.db.QueryRowContext(ctx,
			`SELECT displayName FROM "group" WHERE userId = ?`, id).Scan(&name)
	} else {
		err = i.db.QueryRowContext(ctx, `
			SELECT displayName FROM friend WHERE userId = ?
			UNION
			SELECT displayName FROM friends_info WHERE userId = ?
			LIMIT 1
		`, id, id).Scan(&name)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s %d: %w", kind, id, err)
	}
	return name, nil
}
