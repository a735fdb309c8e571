package zalo

// Message type tags as they appear in the message log. The taxonomy is
// not fully documented; tags listed here were observed in real exports.
// Only text, recalled and photo entries are modeled — the rest are
// acknowledged no-ops, and unknown tags are skipped rather than failed so
// newer exports still import.
const (
	MsgTypeText         = 1
	MsgTypePhoto        = 2
	MsgTypeVoice        = 3
	MsgTypeSticker      = 4
	MsgTypeLink         = 6
	MsgTypeGif          = 7
	MsgTypeLocation     = 17
	MsgTypeVideo        = 18
	MsgTypeFile         = 19
	MsgTypeRecalled     = 20
	MsgTypeEmbed        = 21
	MsgTypeFriendAccept = 25
	MsgTypePoll         = 26
	MsgTypeZinstant     = 52
	MsgTypePinned       = -1909
	MsgTypeDeleted      = -27
	MsgTypeMembership   = -4
)

// NoopTags enumerates the recognized-but-unmodeled tags. Keeping the list
// explicit makes a new tag an addition here, not a change to existing
// handlers.
var NoopTags = map[int]bool{
	MsgTypeVoice:        true,
	MsgTypeSticker:      true,
	MsgTypeLink:         true,
	MsgTypeGif:          true,
	MsgTypeLocation:     true,
	MsgTypeVideo:        true,
	MsgTypeFile:         true,
	MsgTypeEmbed:        true,
	MsgTypeFriendAccept: true,
	MsgTypePoll:         true,
	MsgTypeZinstant:     true,
	MsgTypePinned:       true,
	MsgTypeDeleted:      true,
	MsgTypeMembership:   true,
}
