package zalo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText_PlainString(t *testing.T) {
	got, err := DecodeText(json.RawMessage(`"hi"`), MsgTypeText)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestDecodeText_RichText(t *testing.T) {
	raw := json.RawMessage(`{"action":"rtf","title":"formatted text"}`)
	got, err := DecodeText(raw, MsgTypeText)
	require.NoError(t, err)
	assert.Equal(t, "formatted text", got)
}

func TestDecodeText_RecalledFallback(t *testing.T) {
	raw := json.RawMessage(`{"catId":0,"id":0}`)
	got, err := DecodeText(raw, MsgTypeRecalled)
	require.NoError(t, err)
	assert.Equal(t, RecalledText, got)
}

func TestDecodeText_UnknownObjectShapeIsError(t *testing.T) {
	raw := json.RawMessage(`{"catId":0,"id":0}`)
	_, err := DecodeText(raw, MsgTypeText)
	require.Error(t, err)
}

func TestDecodeText_NonObjectNonStringIsError(t *testing.T) {
	_, err := DecodeText(json.RawMessage(`42`), MsgTypeText)
	require.Error(t, err)
}

func TestMessageEntry_Unmarshal(t *testing.T) {
	line := `{"cliMsgId":1,"fromUid":"7","toUid":"g999","dName":"","msgType":1,"message":"hi","serverTime":1000,"quote":null}`
	var entry MessageEntry
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, int64(1), entry.CliMsgID)
	assert.Equal(t, "7", entry.FromUID)
	assert.Equal(t, "g999", entry.ToUID)
	assert.Equal(t, MsgTypeText, entry.MsgType)
	assert.Equal(t, int64(1000), entry.ServerTime)
	assert.Nil(t, entry.Quote)
}

func TestPhotoPayload_OriginURL(t *testing.T) {
	p := PhotoPayload{OriURL: "https://cdn.example/a.jpg", Href: "https://cdn.example/b.jpg"}
	assert.Equal(t, "https://cdn.example/a.jpg", p.OriginURL())

	p = PhotoPayload{Href: "https://cdn.example/b.jpg"}
	assert.Equal(t, "https://cdn.example/b.jpg", p.OriginURL())
}

func TestPhotoPayload_Dimensions_Object(t *testing.T) {
	p := PhotoPayload{Params: json.RawMessage(`{"width":640,"height":480}`)}
	w, h := p.Dimensions()
	assert.Equal(t, int64(640), w)
	assert.Equal(t, int64(480), h)
}

func TestPhotoPayload_Dimensions_DoubleEncoded(t *testing.T) {
	p := PhotoPayload{Params: json.RawMessage(`"{\"width\":640,\"height\":480}"`)}
	w, h := p.Dimensions()
	assert.Equal(t, int64(640), w)
	assert.Equal(t, int64(480), h)
}

func TestPhotoPayload_Dimensions_MissingIsZero(t *testing.T) {
	p := PhotoPayload{}
	w, h := p.Dimensions()
	assert.Zero(t, w)
	assert.Zero(t, h)
}
