package channels

import (
	"context"

	"github.com/j1nxie/app-z-to-dht/internal/store/models"
)

// Repository upserts the server/channel pair every conversation maps to.
type Repository interface {
	UpsertServer(ctx context.Context, s *models.Server) error
	UpsertChannel(ctx context.Context, c *models.Channel) error
}
