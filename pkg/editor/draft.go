package editor

import (
	"context"
	"fmt"

	"github.com/aretw0/notebook/pkg/core"
)

// Mode is the persistence state of a Draft.
type Mode int

const (
	ModeNew Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "new"
}

// Draft holds uncommitted edits to one note.
// It is not safe for concurrent use.
type Draft struct {
	editor   *Editor
	mode     Mode
	original core.Note
	note     core.Note
}

func (d *Draft) ID() string      { return d.note.ID }
func (d *Draft) Mode() Mode      { return d.mode }
func (d *Draft) Title() string   { return d.note.Title }
func (d *Draft) Content() string { return d.note.Content }

// Note returns the draft as it would be saved.
func (d *Draft) Note() core.Note { return d.note }

// Route is the editor route this draft lives at.
func (d *Draft) Route() Route {
	if d.mode == ModeNew {
		return NewNoteRoute()
	}
	return EditorRoute(d.note.ID)
}

func (d *Draft) SetTitle(title string)     { d.note.Title = title }
func (d *Draft) SetContent(content string) { d.note.Content = content }

// Dirty reports whether the draft differs from what was last loaded or saved.
func (d *Draft) Dirty() bool {
	return d.note.Title != d.original.Title || d.note.Content != d.original.Content
}

// Discard drops uncommitted edits and returns the list route.
func (d *Draft) Discard() Route {
	d.note = d.original
	return ListRoute()
}

// Save commits the draft.
// A blank draft is not saved: in editing mode the stored note is deleted without
// confirmation, in new mode nothing happens. On success the list route is
// returned; on failure the draft's own route is.
func (d *Draft) Save(ctx context.Context) (Route, error) {
	repo := d.editor.repo

	if d.note.IsBlank() {
		if d.mode == ModeNew {
			return ListRoute(), nil
		}
		if err := repo.Delete(ctx, d.note.ID); err != nil {
			return d.Route(), err
		}
		d.editor.debug("blank note deleted", "id", d.note.ID)
		d.mode = ModeNew
		d.original = d.note
		return ListRoute(), nil
	}

	if err := repo.Save(ctx, d.note); err != nil {
		return d.Route(), err
	}

	saved, ok := repo.Find(ctx, d.note.ID)
	if !ok {
		return d.Route(), fmt.Errorf("note %s missing after save", d.note.ID)
	}
	d.mode = ModeEditing
	d.original = saved
	d.note = saved
	return ListRoute(), nil
}

// Delete removes the persisted note after c confirms DeletePrompt.
// A declined or absent confirmation leaves everything in place and keeps the
// caller on the draft's route.
func (d *Draft) Delete(ctx context.Context, c Confirmer) (Route, error) {
	if d.mode != ModeEditing {
		return d.Route(), ErrNotPersisted
	}
	if c == nil || !c.Confirm(DeletePrompt) {
		return d.Route(), nil
	}

	if err := d.editor.repo.Delete(ctx, d.note.ID); err != nil {
		return d.Route(), err
	}
	d.editor.debug("note deleted", "id", d.note.ID)
	d.mode = ModeNew
	return ListRoute(), nil
}
