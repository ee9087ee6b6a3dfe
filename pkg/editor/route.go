package editor

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// View identifies which screen a Route addresses.
type View int

const (
	ViewList View = iota
	ViewEditor
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewEditor:
		return "editor"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// NewNoteID is the editor route parameter that asks for a fresh note.
const NewNoteID = "new"

const notePrefix = "/note/"

// ErrUnknownRoute is returned by ParseRoute for paths outside the two known views.
var ErrUnknownRoute = errors.New("unknown route")

// Route is a logical location in the app: the list, or the editor for one note.
type Route struct {
	View   View
	NoteID string
}

// ListRoute addresses the note list.
func ListRoute() Route { return Route{View: ViewList} }

// EditorRoute addresses the editor for the note with the given id.
func EditorRoute(id string) Route { return Route{View: ViewEditor, NoteID: id} }

// NewNoteRoute addresses the editor in create mode.
func NewNoteRoute() Route { return EditorRoute(NewNoteID) }

// IsNew reports whether the route opens the editor on a fresh note.
func (r Route) IsNew() bool {
	return r.View == ViewEditor && r.NoteID == NewNoteID
}

// Path renders the route as "/" or "/note/{id}".
func (r Route) Path() string {
	if r.View == ViewEditor {
		return notePrefix + url.PathEscape(r.NoteID)
	}
	return "/"
}

func (r Route) String() string { return r.Path() }

// ParseRoute is the inverse of Route.Path.
func ParseRoute(path string) (Route, error) {
	if path == "" || path == "/" {
		return ListRoute(), nil
	}

	raw, ok := strings.CutPrefix(path, notePrefix)
	if !ok || raw == "" || strings.Contains(raw, "/") {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	id, err := url.PathUnescape(raw)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %s: %v", ErrUnknownRoute, path, err)
	}
	return EditorRoute(id), nil
}
