package httpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	s := NewMemorySessionStore(time.Minute)

	key, err := s.Create()
	require.NoError(t, err)
	require.NotEmpty(t, key)

	sess, err := s.Check(key)
	require.NoError(t, err)
	assert.NotNil(t, sess)

	sess, err = s.Check("bogus")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	s := NewMemorySessionStore(-time.Minute)

	key, err := s.Create()
	require.NoError(t, err)

	sess, err := s.Check(key)
	require.NoError(t, err)
	assert.Nil(t, sess, "expired session must not validate")
}
