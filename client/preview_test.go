package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagePreview_WritesContentToTempFile(t *testing.T) {
	p, err := NewImagePreview("photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	defer p.Release()

	assert.Equal(t, ".png", filepath.Ext(p.Path))

	data, err := os.ReadFile(p.Path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestImagePreview_ReleaseRemovesFileAndIsIdempotent(t *testing.T) {
	p, err := NewImagePreview("photo.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, p.Release())
	_, statErr := os.Stat(p.Path)
	assert.True(t, os.IsNotExist(statErr))

	assert.NoError(t, p.Release())
}
