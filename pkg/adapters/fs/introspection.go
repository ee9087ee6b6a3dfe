package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	ReadOnly      bool       `json:"read_only"`
	WatcherActive bool       `json:"watcher_active"`
	Writes        int        `json:"writes"`
	LastWrite     *time.Time `json:"last_write,omitempty"`
	CacheEntries  int        `json:"cache_entries"`
	CacheHits     int        `json:"cache_hits"`
	CacheMisses   int        `json:"cache_misses"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	entries, hits, misses := s.cache.stats()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		CacheEntries:  entries,
		CacheHits:     hits,
		CacheMisses:   misses,
		Path:          s.Path,
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		Writes:        s.writes,
		LastWrite:     s.lastWrite,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
