// Package editor implements the note editor: entering a note by route
// parameter, holding uncommitted edits in a Draft, and committing or deleting
// through the repository.
//
// A Draft is either new (nothing persisted yet) or editing (bound to a note in
// the repository snapshot). Edits stay local to the Draft until Save.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/notebook/pkg/core"
)

// DeletePrompt is the question put to a Confirmer before a note is deleted.
const DeletePrompt = "Are you sure you want to delete this note?"

// ErrNotPersisted is returned when deleting a draft that was never saved.
var ErrNotPersisted = errors.New("note is not persisted")

// Result tells the caller how Enter resolved the requested id.
type Result int

const (
	// ResultNew means a fresh, unsaved draft was created.
	ResultNew Result = iota
	// ResultFound means the draft is bound to an existing note.
	ResultFound
	// ResultNotFound means no note has the id; callers should return to the list.
	ResultNotFound
)

func (r Result) String() string {
	switch r {
	case ResultNew:
		return "new"
	case ResultFound:
		return "found"
	case ResultNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Editor opens drafts against a repository.
type Editor struct {
	repo   *core.Repository
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock sets the clock used to stamp new drafts.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator replaces the uuid generator for new drafts.
func WithIDGenerator(gen func() string) Option {
	return func(e *Editor) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// New creates an Editor over repo.
func New(repo *core.Repository, opts ...Option) *Editor {
	e := &Editor{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enter resolves an editor route parameter.
// NewNoteID yields a fresh draft with a new unique id; any other id is looked up
// in the repository snapshot. Enter never mutates the repository.
func (e *Editor) Enter(ctx context.Context, id string) (*Draft, Result) {
	if id == NewNoteID {
		n := core.Note{
			ID:           e.newID(),
			LastModified: e.now().UnixMilli(),
		}
		e.debug("draft created", "id", n.ID)
		return &Draft{editor: e, mode: ModeNew, original: n, note: n}, ResultNew
	}

	n, ok := e.repo.Find(ctx, id)
	if !ok {
		e.debug("note not found", "id", id)
		return nil, ResultNotFound
	}
	return &Draft{editor: e, mode: ModeEditing, original: n, note: n}, ResultFound
}

// EnterRoute is Enter for a parsed route. List routes resolve to ResultNotFound.
func (e *Editor) EnterRoute(ctx context.Context, r Route) (*Draft, Result) {
	if r.View != ViewEditor {
		return nil, ResultNotFound
	}
	return e.Enter(ctx, r.NoteID)
}

func (e *Editor) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
