package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// ReopenableWriteSyncer is a zapcore.WriteSyncer over a file that can be
// reopened in place after logrotate moved it. Reload and Close may race with
// Write; writers always see either the old or the new file.
type ReopenableWriteSyncer struct {
	path   string
	mu     sync.Mutex
	cur    atomic.Pointer[os.File]
	closed bool
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) Path() string {
	return ws.path
}

// Reload opens the path again and closes the previous file.
func (ws *ReopenableWriteSyncer) Reload() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.closed {
		return fmt.Errorf("reopen %s: %w", ws.path, os.ErrClosed)
	}
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if old := ws.cur.Swap(file); old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.cur.Load().Sync()
}

// Close is idempotent. Writes after Close fail with os.ErrClosed.
func (ws *ReopenableWriteSyncer) Close() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.closed {
		return nil
	}
	ws.closed = true
	return ws.cur.Load().Close()
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (n int, err error) {
	return ws.cur.Load().Write(p)
}
