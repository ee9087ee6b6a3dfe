package fs

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notebook/pkg/core"
)

// Watch implements core.Watchable.
// It reports changes of keys matching pattern made by any process writing to the
// store directory, including this one.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, pattern, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.reportError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

// watchLoop is the main select loop translating fsnotify events into core events.
func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, events chan<- core.Event) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			// Stack only at debug level.
			if s.config.Logger != nil && s.config.Logger.Enabled(ctx, slog.LevelDebug) {
				s.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			e, ok := s.translate(event, pattern)
			if !ok {
				continue
			}
			select {
			case events <- e:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.reportError(wErr)
		}
	}
}

// translate filters and maps one fsnotify event.
func (s *Store) translate(event fsnotify.Event, pattern string) (core.Event, bool) {
	if s.config.Logger != nil {
		s.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	key, ok := s.keyFor(event.Name)
	if !ok {
		return core.Event{}, false
	}
	s.cache.invalidate(key)
	if match, _ := doublestar.Match(pattern, key); !match {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()}, true
}

func (s *Store) reportError(err error) {
	if s.config.Logger != nil {
		s.config.Logger.Error("fsnotify error", "error", err)
	}
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
	}
}
