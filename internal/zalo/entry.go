package zalo

import (
	"encoding/json"
	"fmt"
)

// ConversationEntry is one line of the conversation log.
type ConversationEntry struct {
	UserID string `json:"userId"`
}

// MessageEntry is one line of the message log. Message is left raw
// because its shape depends on MsgType; the handler for each tag decodes
// it.
type MessageEntry struct {
	CliMsgID   int64           `json:"cliMsgId"`
	FromUID    string          `json:"fromUid"`
	ToUID      string          `json:"toUid"`
	DName      string          `json:"dName"`
	MsgType    int             `json:"msgType"`
	Message    json.RawMessage `json:"message"`
	ServerTime int64           `json:"serverTime"`
	Quote      *Quote          `json:"quote"`
}

// Quote is the reply sub-object attached to a message entry. OwnerID may
// be the literal sentinel "0", which means the backup owner themselves.
type Quote struct {
	OwnerID  string `json:"ownerId"`
	CliMsgID int64  `json:"cliMsgId"`
	FromD    string `json:"fromD"`
}

// RecalledText is substituted for a recalled entry (type 20) whose
// payload carries no usable title.
const RecalledText = "[Tin nhắn đã bị thu hồi]"

// richText is the structured form a text payload sometimes takes.
type richText struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// DecodeText interprets the polymorphic payload of a text-like entry
// (types 1 and 20): either a plain JSON string, or an object whose
// "rtf" action carries the text in its title. A type-20 object with no
// usable title decodes to RecalledText. Anything else is an error — the
// taxonomy is not fully known and silently misreading a payload would
// corrupt the import.
func DecodeText(raw json.RawMessage, msgType int) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var rt richText
	if err := json.Unmarshal(raw, &rt); err == nil {
		if rt.Action == "rtf" {
			return rt.Title, nil
		}
		if msgType == MsgTypeRecalled {
			return RecalledText, nil
		}
	}

	return "", fmt.Errorf("do not know how to handle msgType=%d message=%s", msgType, raw)
}

// PhotoPayload is the structured body of a photo message (type 2).
type PhotoPayload struct {
	Title     string          `json:"title"`
	Href      string          `json:"href"`
	OriURL    string          `json:"oriUrl"`
	ThumbURL  string          `json:"thumbUrl"`
	NormalURL string          `json:"normalUrl"`
	Params    json.RawMessage `json:"params"`
}

// OriginURL picks the URL the media was downloaded from. Real exports
// carry it in oriUrl, with href as the older field.
func (p *PhotoPayload) OriginURL() string {
	if p.OriURL != "" {
		return p.OriURL
	}
	return p.Href
}

// Dimensions extracts the pixel size from the params blob, which is a
// JSON object that some export versions double-encode as a string.
// Zero values mean unknown.
func (p *PhotoPayload) Dimensions() (width, height int64) {
	var d struct {
		Width  int64 `json:"width"`
		Height int64 `json:"height"`
	}
	if err := json.Unmarshal(p.Params, &d); err == nil {
		return d.Width, d.Height
	}
	var encoded string
	if err := json.Unmarshal(p.Params, &encoded); err == nil {
		_ = json.Unmarshal([]byte(encoded), &d)
	}
	return d.Width, d.Height
}
