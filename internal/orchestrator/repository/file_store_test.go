package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PutGetDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()

	_, err := store.Get(ctx, KeyRegistry)
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)

	require.NoError(t, store.Put(ctx, KeyRegistry, []byte(`{"activeIndex":1}`)))
	data, err := store.Get(ctx, KeyRegistry)
	require.NoError(t, err)
	assert.Equal(t, `{"activeIndex":1}`, string(data))

	_, err = os.Stat(filepath.Join(dir, ".deployments.json"))
	assert.NoError(t, err)

	require.NoError(t, store.Put(ctx, KeyRegistry, []byte(`{"activeIndex":2}`)))
	data, err = store.Get(ctx, KeyRegistry)
	require.NoError(t, err)
	assert.Equal(t, `{"activeIndex":2}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	require.NoError(t, store.Delete(ctx, KeyRegistry))
	_, err = store.Get(ctx, KeyRegistry)
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)

	assert.NoError(t, store.Delete(ctx, KeyRegistry), "deleting a missing document is not an error")
}

func TestFileStore_PutCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state", "nested")
	store := NewFileStore(dir)

	require.NoError(t, store.Put(context.Background(), KeyMetrics, []byte(`{}`)))
	_, err := os.Stat(filepath.Join(dir, ".metrics.json"))
	assert.NoError(t, err)
}
