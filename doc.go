// Package notebook is the Composition Root for the notebook application.
//
// It connects the note domain (repository, editor, install prompt) with the
// storage adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// A notebook is a single ordered collection of notes mirrored to a local
// key-value store after every change. There is no server. The store is
// pluggable: a directory of files, BadgerDB, SQLite or plain memory.
//
// Features:
//
//   - **Whole-collection writes**: every save or delete rewrites the collection under one key.
//   - **Empty-note pruning**: saving a note with a blank title and content deletes it.
//   - **Draft editing**: edits stay in a Draft until committed, deletion asks for confirmation.
//   - **Install prompt**: a one-shot user-agent heuristic with a permanent dismissal flag.
//   - **Dev safety**: under `go run` or `go test`, stores are re-rooted into a temp dir.
//
// Usage:
//
//	nb, err := notebook.New("./notes", notebook.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer nb.Close()
//
//	draft, _ := nb.Editor.Enter(ctx, notebook.NewNoteID)
//	draft.SetTitle("Groceries")
//	_, err = draft.Save(ctx)
package notebook
