// Package zalo models the records found inside an extracted Zalo backup:
// conversation identifiers, the two newline-delimited JSON logs, and the
// on-disk layout of downloaded media.
package zalo

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a conversation as a direct message or a group chat.
type Kind string

const (
	KindDM    Kind = "DM"
	KindGroup Kind = "GROUP"
)

// groupPrefix marks group ids in the logs ("g123" vs "123").
const groupPrefix = "g"

// ConversationID is a parsed conversation identifier. Group ids arrive in
// the logs with a literal "g" prefix; the numeric part is what the store
// keys on. Parsing it once here keeps the prefix out of everything
// downstream.
type ConversationID struct {
	Kind Kind
	ID   int64
}

// ParseConversationID classifies raw and strips the group prefix.
func ParseConversationID(raw string) (ConversationID, error) {
	kind := KindDM
	s := raw
	if strings.HasPrefix(raw, groupPrefix) {
		kind = KindGroup
		s = strings.TrimPrefix(raw, groupPrefix)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ConversationID{}, fmt.Errorf("conversation id %q: %w", raw, err)
	}
	return ConversationID{Kind: kind, ID: id}, nil
}

// Placeholder returns the auto-generated display name used when no real
// name is known for this conversation.
func (c ConversationID) Placeholder() string {
	if c.Kind == KindGroup {
		return fmt.Sprintf("Group #%d", c.ID)
	}
	return fmt.Sprintf("User #%d", c.ID)
}

// UserPlaceholder returns the auto-generated display name for a user id.
func UserPlaceholder(id int64) string {
	return fmt.Sprintf("User #%d", id)
}

// IsPlaceholder reports whether name matches the auto-generated pattern.
// Placeholder names are always inferior to real ones: the upsert policy
// lets any non-placeholder replace them and never the reverse.
func IsPlaceholder(name string) bool {
	return strings.HasPrefix(name, "User #") || strings.HasPrefix(name, "Group #")
}
