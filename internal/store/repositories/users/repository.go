package users

import (
	"context"

	"github.com/j1nxie/app-z-to-dht/internal/store/models"
)

// Repository upserts users sighted during import.
type Repository interface {
	Upsert(ctx context.Context, u *models.User) error
}
