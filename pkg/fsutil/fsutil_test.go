package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o644))

	content, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", string(content))
	require.NotNil(t, info)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(8), info.Size)
}

func TestReadFileNotFound(t *testing.T) {
	_, _, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFileDirectory(t *testing.T) {
	_, _, err := ReadFile(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestReadFileCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ReadFile(ctx, "whatever.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
