package attachments

import (
	"context"

	"github.com/j1nxie/app-z-to-dht/internal/store/models"
)

// Repository inserts attachment rows and their message links, plus the
// cached blob and download metadata when the media file was found on
// disk. All inserts are first-write-wins.
type Repository interface {
	Insert(ctx context.Context, a *models.Attachment) error
	Link(ctx context.Context, messageID, attachmentID int64) error
	InsertBlob(ctx context.Context, b *models.DownloadBlob) error
	InsertMetadata(ctx context.Context, m *models.DownloadMetadata) error
}
