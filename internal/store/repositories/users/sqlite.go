// Package users persists message senders. A user's name upgrades from
// the "User #<id>" placeholder to a real name on first sighting and is
// never downgraded back.
package users

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

func (r *SQLiteRepository) Upsert(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, display_name, avatar_url, discriminator)
		VALUES (?, ?, NULL, NULL, NULL)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
		WHERE users.name LIKE 'User #%'
		  AND excluded.name NOT LIKE 'User #%'
	`, u.ID, u.Name)
	if err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", u.ID, err)
	}
	return nil
}
