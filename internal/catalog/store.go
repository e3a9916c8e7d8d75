package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"storefront/internal/metrics"
	"storefront/internal/types"
)

const reloadDebounce = 250 * time.Millisecond

// Store holds the catalog currently being served. Reloads swap the whole
// catalog; a failed reload keeps the previous one.
type Store struct {
	mu      sync.RWMutex
	current *types.Catalog
	version int64
	path    string

	listenersMu sync.Mutex
	listeners   map[chan int64]struct{}
}

// NewStore creates a store serving initial. path is the file Reload reads;
// empty means the catalog is fixed.
func NewStore(initial *types.Catalog, path string) *Store {
	return &Store{
		current:   initial,
		version:   1,
		path:      path,
		listeners: make(map[chan int64]struct{}),
	}
}

// Open loads the catalog at path, or the built-in catalog when path is empty
func Open(path string) (*Store, error) {
	if path == "" {
		return NewStore(Default(), ""), nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewStore(c, path), nil
}

// Get returns the current catalog. Callers must not modify it.
func (s *Store) Get() *types.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Version increases by one on every successful reload
func (s *Store) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Path returns the backing catalog file, if any
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the catalog file and swaps it in if it is valid
func (s *Store) Reload(_ context.Context) error {
	if s.path == "" {
		return nil
	}

	c, err := Load(s.path)
	if err != nil {
		metrics.IncCatalogReload(false)
		logrus.WithError(err).WithField("path", s.path).Error("Catalog reload failed, keeping previous catalog")
		return err
	}

	s.mu.Lock()
	s.current = c
	s.version++
	version := s.version
	s.mu.Unlock()

	metrics.IncCatalogReload(true)
	logrus.WithFields(logrus.Fields{
		"path":    s.path,
		"version": version,
		"pages":   len(c.Pages),
	}).Info("Catalog reloaded")

	s.notify(version)
	return nil
}

// Subscribe returns a channel receiving the new version after each
// successful reload, and a function that cancels the subscription.
// Slow subscribers only see the latest version.
func (s *Store) Subscribe() (<-chan int64, func()) {
	ch := make(chan int64, 1)

	s.listenersMu.Lock()
	s.listeners[ch] = struct{}{}
	s.listenersMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, ch)
			s.listenersMu.Unlock()
		})
	}
}

func (s *Store) notify(version int64) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	for ch := range s.listeners {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- version:
		default:
		}
	}
}

// Watch reloads the catalog whenever its file changes, until ctx is done.
// It watches the parent directory so editors that replace the file by
// rename are picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		logrus.Info("Catalog watcher disabled (built-in catalog)")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logrus.WithField("path", s.path).Info("Watching catalog for changes")

	target := filepath.Clean(s.path)
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			logrus.Info("Catalog watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(reloadDebounce)
			} else {
				debounce.Reset(reloadDebounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			_ = s.Reload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("Catalog watcher error")
		}
	}
}
