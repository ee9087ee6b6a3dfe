package notebook

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/notebook/internal/platform"
	"github.com/aretw0/notebook/pkg/core"
	"github.com/aretw0/notebook/pkg/editor"
	"github.com/aretw0/notebook/pkg/listing"
)

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Notebook bundles the store, repository, editor and install prompt.
type Notebook = platform.Notebook

// Entry is a public alias for a list row.
type Entry = listing.Entry

// NewNoteID is the editor id that creates a fresh note.
const NewNoteID = editor.NewNoteID

// --- Configuration ---

// Option defines a functional option for configuring a notebook.
type Option = platform.Option

// WithAdapter selects the storage adapter by name: fs, memory, badger or sqlite.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithStore injects a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithCodec selects the collection encoding ("json" or "yaml").
func WithCodec(name string) Option {
	return platform.WithCodec(name)
}

// WithNotesKey sets the store key of the notes collection.
func WithNotesKey(key string) Option {
	return platform.WithNotesKey(key)
}

// WithFlagKey sets the store key of the install-prompt dismissal flag.
func WithFlagKey(key string) Option {
	return platform.WithFlagKey(key)
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithReadOnly opens the store without write access.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist fails instead of creating a missing store location.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithEventBuffer sets the buffer of the repository change channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens a notebook at uri.
func New(uri string, opts ...Option) (*Notebook, error) {
	return platform.New(uri, opts...)
}

// OpenStore opens just the store selected by opts.
func OpenStore(uri string, opts ...Option) (core.Store, io.Closer, error) {
	return platform.OpenStore(uri, opts...)
}

// --- Safety & Utils ---

// ResolvePath determines the actual store location based on safety rules.
func ResolvePath(userPath string, forceTemp bool) string {
	return platform.ResolvePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards for a notebook root.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
