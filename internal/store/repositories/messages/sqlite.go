package messages

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

func (r *SQLiteRepository) Insert(ctx context.Context, m *models.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (message_id, sender_id, channel_id, text, timestamp)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, m.ID, m.SenderID, m.ChannelID, m.Text, m.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert message %d: %w", m.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) InsertReply(ctx context.Context, messageID, repliedToID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO message_replied_to (message_id, replied_to_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, messageID, repliedToID)
	if err != nil {
		return fmt.Errorf("failed to insert reply %d -> %d: %w", messageID, repliedToID, err)
	}
	return nil
}
