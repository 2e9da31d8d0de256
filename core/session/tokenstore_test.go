package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashlingo/flashlingo-go/core/session"
)

func TestMemoryTokenStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryTokenStore()

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store holds no token")

	require.NoError(t, store.Save(ctx, "tok"))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear(ctx))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStore(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "nested", "token")
		store, err := session.NewFileTokenStore(path)
		require.NoError(t, err)
		assert.Equal(t, path, store.Path())

		token, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, token, "absent file means no token")

		require.NoError(t, store.Save(ctx, "persisted-token"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		token, err = store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "persisted-token", token)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, err := session.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
		require.NoError(t, err)

		require.NoError(t, store.Clear(ctx), "clearing an absent token is not an error")
		require.NoError(t, store.Save(ctx, "tok"))
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))

		token, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("  tok-with-newline\n"), 0o600))

		store, err := session.NewFileTokenStore(path)
		require.NoError(t, err)

		token, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-with-newline", token)
	})
}
