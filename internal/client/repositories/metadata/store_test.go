package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutWritesAllKeys(t *testing.T) {
	db := setupDB(t)
	s := NewStore(db)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, map[string][]byte{
		"session":          []byte("record"),
		"session_saved_at": []byte("2026-10-19T00:00:00Z"),
	}))

	v, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, []byte("record"), v)

	v, err = s.Get(ctx, "session_saved_at")
	require.NoError(t, err)
	assert.Equal(t, []byte("2026-10-19T00:00:00Z"), v)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, map[string][]byte{"session": []byte("x")}))
	require.NoError(t, s.Delete(ctx, "session", "session_saved_at"))
	require.NoError(t, s.Delete(ctx, "session", "session_saved_at"))

	v, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, v)
}
