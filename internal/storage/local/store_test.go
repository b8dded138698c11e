package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SlotStore {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSlotStore(db)
}

func TestSlotStore_GetSetDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"u1"}`)))
	v, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"u1"}`, string(v))

	// overwrite
	require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"u2"}`)))
	v, _, err = s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u2"}`, string(v))

	require.NoError(t, s.Delete(ctx, "user"))
	_, ok, err = s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent slot is fine
	require.NoError(t, s.Delete(ctx, "user"))
}

func TestSlotStore_DeleteAll(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", []byte(`1`)))
	require.NoError(t, s.Set(ctx, "partners", []byte(`2`)))
	require.NoError(t, s.Set(ctx, "session", []byte(`3`)))

	require.NoError(t, s.DeleteAll(ctx, "user", "partners", "recs", "session"))

	for _, name := range []string{"user", "partners", "session"} {
		_, ok, err := s.Get(ctx, name)
		require.NoError(t, err)
		assert.False(t, ok, name)
	}
}
