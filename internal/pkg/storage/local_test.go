package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(ctx, "profiles/u1/avatar.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "profiles/u1/avatar.png", path)

	f, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalStorageDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(ctx, "receipts/r1.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, path))

	_, err = store.Open(ctx, path)
	assert.Error(t, err)

	// Deleting a missing file is not an error
	assert.NoError(t, store.Delete(ctx, "receipts/missing.pdf"))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	// Clean collapses the traversal inside the base dir, so a poisoned
	// path never escapes it.
	path, err := store.Save(ctx, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "../../etc/passwd", path)

	f, err := store.Open(ctx, "etc/passwd")
	require.NoError(t, err)
	f.Close()
}
