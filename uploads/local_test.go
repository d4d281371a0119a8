package uploads

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveOpenRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "pic.png", "image/png", strings.NewReader("png-bytes")))

	body, contentType, err := store.Open(ctx, "pic.png")
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, "image/png", contentType)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(ctx, "pic.png"))
	_, _, err = store.Open(ctx, "pic.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "nope.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_UnknownExtensionFallsBackToOctetStream(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "blob.weirdext", "", strings.NewReader("x")))

	body, contentType, err := store.Open(ctx, "blob.weirdext")
	require.NoError(t, err)
	body.Close()
	assert.Equal(t, "application/octet-stream", contentType)
}

func TestLocalStore_RejectsPathTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"../escape.png", "a/b.png", ".hidden", "..", "/etc/passwd"} {
		assert.Error(t, store.Save(ctx, name, "image/png", strings.NewReader("x")), "name %q", name)
		_, _, openErr := store.Open(ctx, name)
		assert.ErrorIs(t, openErr, ErrNotFound, "name %q", name)
	}
}

func TestLocalStore_RemoveMissingIsNoError(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "never-there.png"))
}
