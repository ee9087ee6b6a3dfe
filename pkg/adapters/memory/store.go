// Package memory provides an in-process core.Store, used as the test fake and for
// throwaway sessions.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notebook/pkg/core"
)

const watchBuffer = 16

type watcher struct {
	pattern string
	ch      chan core.Event
}

// Store implements core.Store and core.Watchable on a map.
type Store struct {
	mu       sync.RWMutex
	values   map[string]string
	watchers map[*watcher]struct{}
	readOnly bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		values:   make(map[string]string),
		watchers: make(map[*watcher]struct{}),
	}
}

// SetReadOnly toggles read-only mode; writes then fail with core.ErrReadOnly.
func (s *Store) SetReadOnly(readOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readOnly = readOnly
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, core.ErrEmptyKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements core.Store. Watchers matching key are notified without blocking;
// a full watcher channel drops the event.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return core.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return core.ErrReadOnly
	}

	eType := core.EventModify
	if _, exists := s.values[key]; !exists {
		eType = core.EventCreate
	}
	s.values[key] = value

	e := core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()}
	for w := range s.watchers {
		if ok, _ := doublestar.Match(w.pattern, key); !ok {
			continue
		}
		select {
		case w.ch <- e:
		default:
		}
	}
	return nil
}

// Watch implements core.Watchable.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	w := &watcher{pattern: pattern, ch: make(chan core.Event, watchBuffer)}

	s.mu.Lock()
	s.watchers[w] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, w)
		close(w.ch)
		s.mu.Unlock()
	}()

	return w.ch, nil
}

// Len returns the number of keys held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
