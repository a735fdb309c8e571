package zalo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConversationID_Group(t *testing.T) {
	conv, err := ParseConversationID("g999")
	require.NoError(t, err)
	assert.Equal(t, ConversationID{Kind: KindGroup, ID: 999}, conv)
}

func TestParseConversationID_DM(t *testing.T) {
	conv, err := ParseConversationID("7")
	require.NoError(t, err)
	assert.Equal(t, ConversationID{Kind: KindDM, ID: 7}, conv)
}

func TestParseConversationID_Invalid(t *testing.T) {
	_, err := ParseConversationID("gabc")
	require.Error(t, err)

	_, err = ParseConversationID("")
	require.Error(t, err)
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "Group #999", ConversationID{Kind: KindGroup, ID: 999}.Placeholder())
	assert.Equal(t, "User #7", ConversationID{Kind: KindDM, ID: 7}.Placeholder())
	assert.Equal(t, "User #42", UserPlaceholder(42))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder("User #7"))
	assert.True(t, IsPlaceholder("Group #999"))
	assert.False(t, IsPlaceholder("Ngọc Anh"))
	assert.False(t, IsPlaceholder(""))
}
