package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notebook/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterMemory = "memory"
	AdapterBadger = "badger"
	AdapterSQLite = "sqlite"
)

// options holds the internal configuration for a notebook.
type options struct {
	store        core.Store
	logger       *slog.Logger
	adapter      string
	codec        string
	notesKey     string
	flagKey      string
	clock        func() time.Time
	eventBuffer  int
	readOnly     bool
	mustExist    bool
	forceTemp    bool
	devSafety    bool
	syncWrites   bool
	errorHandler func(error)
}

// Option defines a functional option for configuring a notebook.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:    AdapterFS,
		codec:      "json",
		notesKey:   core.DefaultNotesKey,
		devSafety:  true,
		syncWrites: true,
	}
}

// WithAdapter selects the storage adapter by name: fs, memory, badger or sqlite.
// Defaults to fs.
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithStore injects a ready store. The adapter and path are then ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCodec selects the serialization of the notes collection ("json" or "yaml").
func WithCodec(name string) Option {
	return func(o *options) {
		o.codec = name
	}
}

// WithNotesKey sets the store key holding the notes collection.
func WithNotesKey(key string) Option {
	return func(o *options) {
		o.notesKey = key
	}
}

// WithFlagKey sets the store key holding the install-prompt dismissal flag.
func WithFlagKey(key string) Option {
	return func(o *options) {
		o.flagKey = key
	}
}

// WithClock replaces time.Now for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithEventBuffer sets the buffer of the repository change channel.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithReadOnly opens the store without write access.
// The dev sandbox is bypassed since nothing can be damaged.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist fails instead of creating a missing store location.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the store location is re-rooted into a temporary directory.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithSyncWrites makes badger flush every write. Defaults to true.
func WithSyncWrites(enabled bool) Option {
	return func(o *options) {
		o.syncWrites = enabled
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures
// (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
