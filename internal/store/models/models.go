// Package models defines the rows of the DHT message-history store that
// the importer writes. The schema itself is owned by the viewer; these
// structs mirror only the columns the import pipeline touches.
package models

// ServerKind distinguishes the two conversation shapes the viewer knows.
type ServerKind string

const (
	ServerDM    ServerKind = "DM"
	ServerGroup ServerKind = "GROUP"
)

// Server is a conversation's server row. The schema models every
// conversation as a one-channel server, so a Server's id always equals
// its Channel's id.
type Server struct {
	ID   int64
	Name string
	Kind ServerKind
}

// Channel is a conversation's channel row.
type Channel struct {
	ID     int64
	Server int64
	Name   string
}

// User is a message sender. Only id and name are populated by imports;
// display_name, avatar_url and discriminator stay NULL.
type User struct {
	ID   int64
	Name string
}

// Message is one imported chat message.
type Message struct {
	ID        int64
	SenderID  int64
	ChannelID int64
	Text      string
	Timestamp int64
}

// Attachment describes a piece of media referenced by a message. The
// importer keys attachments by the owning message id.
type Attachment struct {
	ID            int64
	Name          string
	Type          string
	NormalizedURL string
	DownloadURL   string
	Size          int64
	Width         int64
	Height        int64
}

// DownloadBlob caches the bytes of a media file found on disk.
type DownloadBlob struct {
	NormalizedURL string
	Blob          []byte
}

// DownloadMetadata records how a cached blob was obtained. Imported blobs
// are always recorded as a successful download.
type DownloadMetadata struct {
	NormalizedURL string
	DownloadURL   string
	Status        int
	Type          string
	Size          int64
}
