package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
)

// DefaultNotesKey is the store key holding the serialized note collection.
const DefaultNotesKey = "notes"

// DefaultEventBuffer is the size of the channel returned by Repository.Watch.
const DefaultEventBuffer = 100

// Repository owns the note collection: an in-memory snapshot mirrored to a Store.
// Every Save and Delete rewrites the whole collection under a single key.
type Repository struct {
	store       Store
	codec       Codec
	key         string
	logger      *slog.Logger
	now         func() time.Time
	eventBuffer int

	mu     sync.RWMutex
	notes  []Note
	loaded bool
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithCodec sets the collection codec. Defaults to JSONCodec.
func WithCodec(c Codec) RepositoryOption {
	return func(r *Repository) {
		if c != nil {
			r.codec = c
		}
	}
}

// WithNotesKey sets the store key of the collection. Defaults to DefaultNotesKey.
func WithNotesKey(key string) RepositoryOption {
	return func(r *Repository) {
		if key != "" {
			r.key = key
		}
	}
}

// WithLogger sets the logger used to report degraded reads.
func WithLogger(logger *slog.Logger) RepositoryOption {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithEventBuffer sets the buffer of the Watch channel.
// Zero means default (100).
func WithEventBuffer(size int) RepositoryOption {
	return func(r *Repository) {
		if size > 0 {
			r.eventBuffer = size
		}
	}
}

// NewRepository creates a Repository backed by store.
func NewRepository(store Store, opts ...RepositoryOption) *Repository {
	r := &Repository{
		store:       store,
		codec:       JSONCodec{},
		key:         DefaultNotesKey,
		now:         time.Now,
		eventBuffer: DefaultEventBuffer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadAll returns the persisted collection in storage order.
// It never fails: a missing key, an unreadable store or an undecodable value all
// yield an empty collection.
func (r *Repository) LoadAll(ctx context.Context) []Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = r.read(ctx)
	r.loaded = true
	return cloneNotes(r.notes)
}

// Reload refreshes the in-memory snapshot from the store.
func (r *Repository) Reload(ctx context.Context) {
	r.LoadAll(ctx)
}

// Snapshot returns the current in-memory collection without touching the store,
// loading it first if this repository has never read the store.
func (r *Repository) Snapshot(ctx context.Context) []Note {
	r.ensureLoaded(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneNotes(r.notes)
}

// Find looks a note up by id in the current snapshot.
func (r *Repository) Find(ctx context.Context, id string) (Note, bool) {
	r.ensureLoaded(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := indexOf(r.notes, id); i >= 0 {
		return r.notes[i], true
	}
	return Note{}, false
}

// Save upserts n by id and stamps LastModified with the current time.
// An existing note is replaced in place; a new one is appended.
// A blank note is deleted instead of saved.
// Invalid UTF-8 in the title or content is replaced with U+FFFD so the
// snapshot matches what every codec writes back.
func (r *Repository) Save(ctx context.Context, n Note) error {
	if n.ID == "" {
		return ErrEmptyID
	}
	n.Title = strings.ToValidUTF8(n.Title, "\uFFFD")
	n.Content = strings.ToValidUTF8(n.Content, "\uFFFD")
	if n.IsBlank() {
		return r.Delete(ctx, n.ID)
	}

	r.ensureLoaded(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	stamp := r.now().UnixMilli()
	next := cloneNotes(r.notes)
	if i := indexOf(next, n.ID); i >= 0 {
		// Timestamps never move backwards for a note, even on clock ties.
		if stamp <= next[i].LastModified {
			stamp = next[i].LastModified + 1
		}
		n.LastModified = stamp
		next[i] = n
	} else {
		n.LastModified = stamp
		next = append(next, n)
	}

	if err := r.persist(ctx, next); err != nil {
		return fmt.Errorf("failed to save note %s: %w", n.ID, err)
	}
	r.notes = next
	return nil
}

// Delete removes the note with the given id.
// Deleting an absent id is a no-op and does not touch the store.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	r.ensureLoaded(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.notes, id)
	if i < 0 {
		return nil
	}

	next := make([]Note, 0, len(r.notes)-1)
	next = append(next, r.notes[:i]...)
	next = append(next, r.notes[i+1:]...)

	if err := r.persist(ctx, next); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	r.notes = next
	return nil
}

// Watch reloads the snapshot whenever another writer changes the collection key
// and forwards the triggering event.
// The store must implement Watchable.
func (r *Repository) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := r.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}

	upstream, err := w.Watch(ctx, r.key)
	if err != nil {
		return nil, err
	}

	out := make(chan Event, r.eventBuffer)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-upstream:
				if !ok {
					return nil
				}
				r.Reload(ctx)
				if r.logger != nil {
					r.logger.Debug("notes reloaded", "event", e.String())
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if r.logger != nil {
			r.logger.Error("notes watcher panic", "error", err)
		}
	}))

	return out, nil
}

func (r *Repository) ensureLoaded(ctx context.Context) {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()

	if !loaded {
		r.LoadAll(ctx)
	}
}

func (r *Repository) read(ctx context.Context) []Note {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.warn("failed to read notes, starting empty", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	notes, err := r.codec.Decode([]byte(raw))
	if err != nil {
		r.warn("failed to decode notes, starting empty", err)
		return nil
	}
	return notes
}

func (r *Repository) persist(ctx context.Context, notes []Note) error {
	data, err := r.codec.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	return r.store.Set(ctx, r.key, string(data))
}

func (r *Repository) warn(msg string, err error) {
	if r.logger != nil {
		r.logger.Warn(msg, "key", r.key, "codec", r.codec.Name(), "error", err)
	}
}

func indexOf(notes []Note, id string) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}
