package chatbot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "conversations.db"))
	require.NoError(t, err)
	defer store.Close()

	conv, err := store.Create()
	require.NoError(t, err)
	require.NotEmpty(t, conv.ID)

	content := "what missions are urgent?"
	require.NoError(t, store.AddMessages(conv.ID, []Message{{Role: "user", Content: &content}}))

	got, err := store.Get(conv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "what missions are urgent?", *got.Messages[0].Content)

	got, err = store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	//appending to a missing conversation is a no-op
	assert.NoError(t, store.AddMessages("missing", []Message{{Role: "user", Content: &content}}))
}
