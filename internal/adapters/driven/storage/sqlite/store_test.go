package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and retrieves cursor state", func(t *testing.T) {
		store := newTestStore(t)
		now := time.Now().UTC().Truncate(time.Second)

		err := store.Save(ctx, domain.SyncState{
			SourceID: "acct-1",
			Cursor:   "token-123",
			LastSync: now,
		})
		require.NoError(t, err)

		saved, err := store.Get(ctx, "acct-1")
		require.NoError(t, err)
		assert.Equal(t, "acct-1", saved.SourceID)
		assert.Equal(t, "token-123", saved.Cursor)
		assert.Equal(t, now.Unix(), saved.LastSync.Unix())
	})

	t.Run("save overwrites the previous cursor", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.Save(ctx, domain.SyncState{SourceID: "acct-1", Cursor: "v1"}))
		require.NoError(t, store.Save(ctx, domain.SyncState{SourceID: "acct-1", Cursor: "v2"}))

		saved, err := store.Get(ctx, "acct-1")
		require.NoError(t, err)
		assert.Equal(t, "v2", saved.Cursor)
	})

	t.Run("get of an unknown source returns not found", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Get(ctx, "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete removes the state", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Save(ctx, domain.SyncState{SourceID: "acct-1", Cursor: "v1"}))

		require.NoError(t, store.Delete(ctx, "acct-1"))

		_, err := store.Get(ctx, "acct-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete of an unknown source is a no-op", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Delete(ctx, "missing"))
	})

	t.Run("state survives reopening the store", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, domain.SyncState{SourceID: "acct-1", Cursor: "persist"}))
		require.NoError(t, store.Close())

		reopened, err := NewStore(dir)
		require.NoError(t, err)
		defer reopened.Close()

		saved, err := reopened.Get(ctx, "acct-1")
		require.NoError(t, err)
		assert.Equal(t, "persist", saved.Cursor)
	})

	t.Run("migrations are idempotent", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		again, err := NewStore(dir)
		require.NoError(t, err)
		assert.NoError(t, again.Close())
	})
}
