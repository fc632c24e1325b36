package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store serves the active catalog. Reloads swap the whole catalog, readers
// never observe a partially updated one.
type Store struct {
	fs   afero.Fs
	path string
	cur  atomic.Pointer[Catalog]

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStore loads the catalog once. An empty path serves the defaults.
func NewStore(fsys afero.Fs, path string) (*Store, error) {
	cat, err := Load(fsys, path)
	if err != nil {
		return nil, err
	}
	s := &Store{fs: fsys, path: path}
	s.cur.Store(cat)
	return s, nil
}

// Catalog returns the active catalog.
func (s *Store) Catalog() *Catalog {
	return s.cur.Load()
}

// Path is the override file, empty when serving the defaults.
func (s *Store) Path() string { return s.path }

// Reload re-reads the override file. On error the previous catalog stays
// active.
func (s *Store) Reload() error {
	cat, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.cur.Store(cat)
	return nil
}

// StartWatcher reloads the catalog whenever the override file changes. It is
// a no-op when hot reload is disabled or no file is configured. The watcher
// stops when ctx is cancelled or Close is called.
func (s *Store) StartWatcher(ctx context.Context, enableHotReload bool) error {
	if !enableHotReload || s.path == "" {
		slog.Info("Content hot-reload disabled, skipping file system watcher setup")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		slog.Debug("Content watcher already active")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watch(ctx, watcher, s.done)

	slog.Info("Content watcher started", "path", s.path)
	return nil
}

func (s *Store) watch(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Content reload failed, keeping previous catalog", "path", s.path, "error", err)
				continue
			}
			slog.Info("Content reloaded", "path", s.path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Content watcher error", "error", err)
		}
	}
}

// Close stops the watcher, if running, and waits for it to exit.
func (s *Store) Close() error {
	s.mu.Lock()
	watcher, done := s.watcher, s.done
	s.watcher, s.done = nil, nil
	s.mu.Unlock()

	if watcher == nil {
		return nil
	}
	err := watcher.Close()
	<-done
	return err
}
