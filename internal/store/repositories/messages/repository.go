package messages

import (
	"context"

	"github.com/j1nxie/app-z-to-dht/internal/store/models"
)

// Repository inserts message and reply rows. Both are first-write-wins:
// a duplicate primary key is a no-op, which is what makes re-running an
// import safe.
type Repository interface {
	Insert(ctx context.Context, m *models.Message) error
	InsertReply(ctx context.Context, messageID, repliedToID int64) error
}
