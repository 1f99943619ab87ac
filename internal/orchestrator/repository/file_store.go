package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
)

type fileStore struct {
	dir string
}

func (f *fileStore) path(key string) string {
	return filepath.Join(f.dir, fmt.Sprintf(".%s.json", key))
}

func (f *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("FileStore.Get %s: %w", key, apperrors.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("FileStore.Get %s: %w", key, err)
	}
	return data, nil
}

// Put replaces the document atomically: the data is written to a temp file in
// the same directory, synced, then renamed over the target.
func (f *fileStore) Put(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("FileStore.Put %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(f.dir, fmt.Sprintf(".%s.*.tmp", key))
	if err != nil {
		return fmt.Errorf("FileStore.Put %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("FileStore.Put %s: %w", key, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("FileStore.Put %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("FileStore.Put %s: %w", key, err)
	}
	if err = os.Rename(tmpName, f.path(key)); err != nil {
		return fmt.Errorf("FileStore.Put %s: %w", key, err)
	}
	return nil
}

func (f *fileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("FileStore.Delete %s: %w", key, err)
	}
	return nil
}

func NewFileStore(dir string) DocumentStore {
	return &fileStore{
		dir: dir,
	}
}
