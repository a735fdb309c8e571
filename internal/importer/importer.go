// Package importer reads the two newline-delimited JSON logs of an
// extracted backup and writes them into the DHT store. Every log line is
// committed in its own transaction, so an interrupted run keeps
// everything it got through and a re-run is a sequence of no-op inserts.
package importer

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/j1nxie/app-z-to-dht/internal/common"
	"github.com/j1nxie/app-z-to-dht/internal/dbx"
	"github.com/j1nxie/app-z-to-dht/internal/logging"
	"github.com/j1nxie/app-z-to-dht/internal/resolver"
	"github.com/j1nxie/app-z-to-dht/internal/store/models"
	"github.com/j1nxie/app-z-to-dht/internal/store/repositories/attachments"
	"github.com/j1nxie/app-z-to-dht/internal/store/repositories/channels"
	"github.com/j1nxie/app-z-to-dht/internal/store/repositories/messages"
	"github.com/j1nxie/app-z-to-dht/internal/store/repositories/users"
	"github.com/j1nxie/app-z-to-dht/internal/zalo"
)

// Log lines are single JSON objects; rich messages with inlined payloads
// have been seen past 1 MiB.
const maxLineSize = 4 << 20

type Importer struct {
	db       *sql.DB
	resolver resolver.Resolver
	log      logging.Logger

	root    string
	account string
}

func New(db *sql.DB, res resolver.Resolver, log logging.Logger) *Importer {
	return &Importer{db: db, resolver: res, log: log}
}

// Run imports the conversation log and then the message log of the
// extracted backup rooted at root for the given account id.
func (imp *Importer) Run(ctx context.Context, root, account string) error {
	imp.root = root
	imp.account = account

	if err := imp.ImportConversations(ctx, zalo.ConversationLogPath(root, account)); err != nil {
		return err
	}
	return imp.ImportMessages(ctx, zalo.MessageLogPath(root, account))
}

// ImportConversations upserts a server/channel pair per conversation log
// line. Display names come from the resolver when it knows the id, a
// placeholder otherwise; the upsert guard keeps real names from being
// clobbered on re-import.
func (imp *Importer) ImportConversations(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open conversation log: %w", err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for line := 1; scanner.Scan(); line++ {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var entry zalo.ConversationEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return common.NewFormatError(path, line, "", err)
		}

		conv, err := zalo.ParseConversationID(entry.UserID)
		if err != nil {
			return common.NewFormatError(path, line, entry.UserID, err)
		}

		name, err := imp.resolver.Lookup(ctx, conv.ID, conv.Kind)
		if err != nil {
			return err
		}
		if name == "" {
			name = conv.Placeholder()
		}

		err = dbx.WithTx(ctx, imp.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := channels.NewSQLiteRepository(tx)
			kind := models.ServerDM
			if conv.Kind == zalo.KindGroup {
				kind = models.ServerGroup
			}
			if err := repo.UpsertServer(ctx, &models.Server{ID: conv.ID, Name: name, Kind: kind}); err != nil {
				return err
			}
			return repo.UpsertChannel(ctx, &models.Channel{ID: conv.ID, Server: conv.ID, Name: name})
		})
		if err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read conversation log: %w", err)
	}

	imp.log.Info(ctx, "conversations imported", "count", count)
	return nil
}

type msgHandler func(ctx context.Context, tx dbx.DBTX, line int, entry *zalo.MessageEntry, conv zalo.ConversationID) error

// ImportMessages imports the message log line by line. Text, recalled and
// photo entries are modeled; recognized no-op tags and unknown tags are
// counted and skipped without writing any rows.
func (imp *Importer) ImportMessages(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open message log: %w", err)
	}
	defer f.Close()

	handlers := map[int]msgHandler{
		zalo.MsgTypeText:     imp.importText,
		zalo.MsgTypeRecalled: imp.importText,
		zalo.MsgTypePhoto:    imp.importPhoto,
	}

	var imported, skippedNoop, skippedUnknown int
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for line := 1; scanner.Scan(); line++ {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var entry zalo.MessageEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return common.NewFormatError(path, line, "", err)
		}

		handler, ok := handlers[entry.MsgType]
		if !ok {
			if zalo.NoopTags[entry.MsgType] {
				skippedNoop++
			} else {
				skippedUnknown++
				imp.log.Debug(ctx, "skipping unknown message type",
					"msgType", entry.MsgType, "cliMsgId", entry.CliMsgID)
			}
			continue
		}

		conv, err := zalo.ParseConversationID(entry.ToUID)
		if err != nil {
			return common.NewFormatError(path, line, strconv.FormatInt(entry.CliMsgID, 10), err)
		}

		err = dbx.WithTx(ctx, imp.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if err := handler(ctx, tx, line, &entry, conv); err != nil {
				return err
			}
			if entry.Quote != nil {
				return imp.importQuote(ctx, tx, line, &entry)
			}
			return nil
		})
		if err != nil {
			return err
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read message log: %w", err)
	}

	imp.log.Info(ctx, "messages imported",
		"count", imported, "skipped", skippedNoop, "unknown", skippedUnknown)
	return nil
}

// senderName picks the display name for a message sender: the entry's
// own dName, the resolver, then the placeholder.
func (imp *Importer) senderName(ctx context.Context, entry *zalo.MessageEntry, sender int64) (string, error) {
	if entry.DName != "" {
		return entry.DName, nil
	}
	name, err := imp.resolver.Lookup(ctx, sender, zalo.KindDM)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = zalo.UserPlaceholder(sender)
	}
	return name, nil
}

func (imp *Importer) upsertSender(ctx context.Context, tx dbx.DBTX, line int, entry *zalo.MessageEntry) (int64, error) {
	sender, err := strconv.ParseInt(entry.FromUID, 10, 64)
	if err != nil {
		return 0, common.NewFormatError("", line, strconv.FormatInt(entry.CliMsgID, 10), err)
	}
	name, err := imp.senderName(ctx, entry, sender)
	if err != nil {
		return 0, err
	}
	if err := users.NewSQLiteRepository(tx).Upsert(ctx, &models.User{ID: sender, Name: name}); err != nil {
		return 0, err
	}
	return sender, nil
}

func (imp *Importer) importText(ctx context.Context, tx dbx.DBTX, line int, entry *zalo.MessageEntry, conv zalo.ConversationID) error {
	text, err := zalo.DecodeText(entry.Message, entry.MsgType)
	if err != nil {
		return common.NewFormatError("", line, strconv.FormatInt(entry.CliMsgID, 10), err)
	}

	sender, err := imp.upsertSender(ctx, tx, line, entry)
	if err != nil {
		return err
	}

	return messages.NewSQLiteRepository(tx).Insert(ctx, &models.Message{
		ID:        entry.CliMsgID,
		SenderID:  sender,
		ChannelID: conv.ID,
		Text:      text,
		Timestamp: entry.ServerTime,
	})
}

func (imp *Importer) importPhoto(ctx context.Context, tx dbx.DBTX, line int, entry *zalo.MessageEntry, conv zalo.ConversationID) error {
	var payload zalo.PhotoPayload
	if err := json.Unmarshal(entry.Message, &payload); err != nil {
		return common.NewFormatError("", line, strconv.FormatInt(entry.CliMsgID, 10), err)
	}

	sender, err := imp.upsertSender(ctx, tx, line, entry)
	if err != nil {
		return err
	}

	// The message row carries no text; the viewer renders the linked
	// attachment instead.
	msgRepo := messages.NewSQLiteRepository(tx)
	if err := msgRepo.Insert(ctx, &models.Message{
		ID:        entry.CliMsgID,
		SenderID:  sender,
		ChannelID: conv.ID,
		Timestamp: entry.ServerTime,
	}); err != nil {
		return err
	}

	origin := payload.OriginURL()
	width, height := payload.Dimensions()
	mime := zalo.MIMEFromExt(zalo.ExtFromURL(origin))

	// The exporting application may have downloaded the file next to the
	// logs; a missing file still gets an attachment row, just no blob.
	mediaPath := filepath.Join(
		zalo.MediaDir(imp.root, imp.account, conv),
		zalo.MediaFileName(entry.CliMsgID, origin),
	)
	blob, readErr := os.ReadFile(mediaPath)

	var size int64
	if readErr == nil {
		size = int64(len(blob))
	}

	attRepo := attachments.NewSQLiteRepository(tx)
	if err := attRepo.Insert(ctx, &models.Attachment{
		ID:            entry.CliMsgID,
		Name:          zalo.NameFromURL(origin),
		Type:          mime,
		NormalizedURL: origin,
		DownloadURL:   origin,
		Size:          size,
		Width:         width,
		Height:        height,
	}); err != nil {
		return err
	}
	if err := attRepo.Link(ctx, entry.CliMsgID, entry.CliMsgID); err != nil {
		return err
	}

	if readErr != nil {
		imp.log.Debug(ctx, "media file not found", "path", mediaPath, "cliMsgId", entry.CliMsgID)
		return nil
	}

	if err := attRepo.InsertBlob(ctx, &models.DownloadBlob{NormalizedURL: origin, Blob: blob}); err != nil {
		return err
	}
	return attRepo.InsertMetadata(ctx, &models.DownloadMetadata{
		NormalizedURL: origin,
		DownloadURL:   origin,
		Status:        200,
		Type:          mime,
		Size:          size,
	})
}

// importQuote records the reply edge of a quoting message and makes sure
// the quoted author exists. The log uses ownerId "0" as a sentinel for
// the backup owner.
func (imp *Importer) importQuote(ctx context.Context, tx dbx.DBTX, line int, entry *zalo.MessageEntry) error {
	owner := entry.Quote.OwnerID
	if owner == "0" {
		owner = imp.account
	}
	ownerID, err := strconv.ParseInt(owner, 10, 64)
	if err != nil {
		return common.NewFormatError("", line, strconv.FormatInt(entry.CliMsgID, 10), err)
	}

	name := entry.Quote.FromD
	if name == "" {
		name = zalo.UserPlaceholder(ownerID)
	}
	if err := users.NewSQLiteRepository(tx).Upsert(ctx, &models.User{ID: ownerID, Name: name}); err != nil {
		return err
	}

	return messages.NewSQLiteRepository(tx).InsertReply(ctx, entry.CliMsgID, entry.Quote.CliMsgID)
}
