// Package channels persists the server and channel rows a conversation
// maps to. Name conflicts resolve by strict improvement: a stored
// placeholder ("User #<id>" / "Group #<id>") yields to a real name, and
// nothing ever overwrites a real name.
package channels

import (
	"context"
	"fmt"

	"github.com/j1nxie/app-z-to-dht/internal/dbx"
	"github.com/j1nxie/app-z-to-dht/internal/store/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) UpsertServer(ctx context.Context, s *models.Server) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO servers (id, name, type) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
		WHERE (servers.name LIKE 'User #%' OR servers.name LIKE 'Group #%')
		  AND excluded.name NOT LIKE 'User #%'
		  AND excluded.name NOT LIKE 'Group #%'
	`, s.ID, s.Name, string(s.Kind))
	if err != nil {
		return fmt.Errorf("failed to upsert server %d: %w", s.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) UpsertChannel(ctx context.Context, c *models.Channel) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO channels (id, server, name) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
		WHERE (channels.name LIKE 'User #%' OR channels.name LIKE 'Group #%')
		  AND excluded.name NOT LIKE 'User #%'
		  AND excluded.name NOT LIKE 'Group #%'
	`, c.ID, c.Server, c.Name)
	if err != nil {
		return fmt.Errorf("failed to upsert channel %d: %w", c.ID, err)
	}
	return nil
}
