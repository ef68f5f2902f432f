package notebook

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/notepolish/pkg/api"
)

func setupTestStore(t *testing.T) (*sqliteStore, context.Context) {
	t.Helper()
	ctx := context.Background()
	store, err := openSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, ctx
}

func TestSQLiteFoldersAndNotes(t *testing.T) {
	store, ctx := setupTestStore(t)

	require.NoError(t, store.EnsureFolder(ctx, "Inbox"))
	require.NoError(t, store.EnsureFolder(ctx, "Inbox")) // idempotent

	_, err := store.PutNote(ctx, api.Note{Folder: "Inbox", Name: "groceries", Body: "- Eggs\n- Milk\n"})
	require.NoError(t, err)
	_, err = store.PutNote(ctx, api.Note{Folder: "Inbox", Name: "ideas", Body: "# Ideas\n"})
	require.NoError(t, err)

	t.Run("folders report note counts", func(t *testing.T) {
		folders, err := store.Folders(ctx)
		require.NoError(t, err)
		require.Len(t, folders, 1)
		assert.Equal(t, "Inbox", folders[0].Name)
		assert.Equal(t, 2, folders[0].Notes)
	})

	t.Run("notes listed in creation order", func(t *testing.T) {
		notes, err := store.Notes(ctx, "Inbox")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "groceries", notes[0].Name)
		assert.Equal(t, "ideas", notes[1].Name)
	})

	t.Run("body round-trips", func(t *testing.T) {
		body, err := store.Body(ctx, "Inbox", "groceries")
		require.NoError(t, err)
		assert.Equal(t, "- Eggs\n- Milk\n", body)
	})

	t.Run("missing note yields ErrNotFound", func(t *testing.T) {
		_, err := store.Body(ctx, "Inbox", "nope")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestSQLitePolishedLedger(t *testing.T) {
	store, ctx := setupTestStore(t)

	ok, err := store.HasPolished(ctx, "hash-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.CreateNote(ctx, "Clean", "Polished - groceries", "<pre>x</pre>", "hash-1"))

	ok, err = store.HasPolished(ctx, "hash-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// CreateNote creates the folder implicitly
	folders, err := store.Folders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Clean", folders[0].Name)

	body, err := store.Body(ctx, "Clean", "Polished - groceries")
	require.NoError(t, err)
	assert.Equal(t, "<pre>x</pre>", body)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "carrier-pigeon", "")
	require.Error(t, err)
}
