// Package fs implements core.Store on a plain directory: one file per key,
// written atomically, watched with fsnotify.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notebook/pkg/core"
)

// KeyExt is the extension of the file backing each key.
const KeyExt = ".dat"

// Store implements core.Store using the filesystem.
type Store struct {
	Path   string
	config Config

	cache *cache

	mu            sync.RWMutex
	watcherActive bool
	lastWrite     *time.Time
	writes        int
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	Perm         os.FileMode // Defaults to 0644
	Logger       *slog.Logger
	ErrorHandler func(error) // Receives runtime watcher failures
}

// NewStore creates a new filesystem-backed store.
// It does no I/O until Initialize or the first operation.
func NewStore(config Config) *Store {
	if config.Perm == 0 {
		config.Perm = 0644
	}
	return &Store{
		Path:   config.Path,
		config: config,
		cache:  newCache(),
	}
}

// Initialize ensures the store directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	filename, err := s.filename(key)
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(filename)
	if errors.Is(err, os.ErrNotExist) {
		s.cache.invalidate(key)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to stat key %s: %w", key, err)
	}
	if v, ok := s.cache.get(key, info); ok {
		return v, true, nil
	}

	data, ok, err := readFileIfExists(filename)
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	if !ok {
		s.cache.invalidate(key)
		return "", false, nil
	}
	// Stamp taken before the read: a concurrent rewrite only causes a later miss.
	s.cache.put(key, info, string(data))
	return string(data), true, nil
}

// Set implements core.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	filename, err := s.filename(key)
	if err != nil {
		return err
	}

	s.cache.invalidate(key)
	if err := writeFileAtomic(filename, []byte(value), s.config.Perm); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("key written", "key", key, "bytes", len(value))
	}
	s.recordWrite()
	return nil
}

// Keys lists the keys currently held, in directory order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() || isTempFile(e.Name()) {
			continue
		}
		if key, ok := s.keyFor(e.Name()); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// filename maps a key to its backing file.
// Keys are flat names: no separators, no leading dot.
func (s *Store) filename(key string) (string, error) {
	if key == "" {
		return "", core.ErrEmptyKey
	}
	if strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") || strings.HasPrefix(key, TempFilePrefix) {
		return "", fmt.Errorf("invalid store key: %q", key)
	}
	return filepath.Join(s.Path, key+KeyExt), nil
}

// keyFor is the inverse of filename.
func (s *Store) keyFor(name string) (string, bool) {
	base := filepath.Base(name)
	if filepath.Ext(base) != KeyExt || isTempFile(base) {
		return "", false
	}
	return strings.TrimSuffix(base, KeyExt), true
}

func (s *Store) recordWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastWrite = &now
	s.writes++
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
