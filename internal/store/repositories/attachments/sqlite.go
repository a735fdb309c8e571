package attachments

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

func (r *SQLiteRepository) Insert(ctx context.Context, a *models.Attachment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attachments
			(attachment_id, name, type, normalized_url, download_url, size, width, height)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, a.ID, a.Name, a.Type, a.NormalizedURL, a.DownloadURL, a.Size, a.Width, a.Height)
	if err != nil {
		return fmt.Errorf("failed to insert attachment %d: %w", a.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Link(ctx context.Context, messageID, attachmentID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO message_attachments (message_id, attachment_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, messageID, attachmentID)
	if err != nil {
		return fmt.Errorf("failed to link attachment %d to message %d: %w", attachmentID, messageID, err)
	}
	return nil
}

func (r *SQLiteRepository) InsertBlob(ctx context.Context, b *models.DownloadBlob) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO download_blobs (normalized_url, blob)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, b.NormalizedURL, b.Blob)
	if err != nil {
		return fmt.Errorf("failed to insert blob for %s: %w", b.NormalizedURL, err)
	}
	return nil
}

func (r *SQLiteRepository) InsertMetadata(ctx context.Context, m *models.DownloadMetadata) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO download_metadata (normalized_url, download_url, status, type, size)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, m.NormalizedURL, m.DownloadURL, m.Status, m.Type, m.Size)
	if err != nil {
		return fmt.Errorf("failed to insert download metadata for %s: %w", m.NormalizedURL, err)
	}
	return nil
}
