package notebook_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aretw0/notebook"
	"github.com/aretw0/notebook/pkg/editor"
	"github.com/aretw0/notebook/pkg/install"
	"github.com/aretw0/notebook/pkg/listing"
)

// Example_basic creates a note through the editor and lists it.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "notebook-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	nb, err := notebook.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer nb.Close()

	ctx := context.Background()

	draft, _ := nb.Editor.Enter(ctx, notebook.NewNoteID)
	draft.SetTitle("Groceries")
	draft.SetContent("Milk, eggs")
	route, err := draft.Save(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range listing.Project(nb.Notes.Snapshot(ctx)) {
		fmt.Printf("%s: %s\n", e.Title, e.Preview)
	}
	fmt.Println(route.Path())
	// Output:
	// Groceries: Milk, eggs
	// /
}

// Example_emptyNote shows that a blank note is never stored.
func Example_emptyNote() {
	nb, err := notebook.New("", notebook.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	draft, _ := nb.Editor.Enter(ctx, notebook.NewNoteID)
	draft.SetTitle("   ")
	if _, err := draft.Save(ctx); err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(nb.Notes.LoadAll(ctx)))
	// Output: 0
}

// Example_installPrompt shows the prompt for an Android browser.
func Example_installPrompt() {
	nb, err := notebook.New("", notebook.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	state := nb.Prompt.Activate(ctx, install.Environment{UserAgent: "Mozilla/5.0 (Linux; Android 14)"})
	in, _ := nb.Prompt.Instructions()
	fmt.Println(state)
	fmt.Println(in.Heading)
	// Output:
	// visible
	// Install this app on your Android device:
}

// Example_routes parses editor routes.
func Example_routes() {
	r, _ := editor.ParseRoute("/note/new")
	fmt.Println(r.IsNew(), editor.EditorRoute("abc").Path())

	e := listing.Project([]notebook.Note{{ID: "x", LastModified: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC).UnixMilli()}},
		listing.WithLocation(time.UTC))
	fmt.Println(e[0].Title, "|", e[0].Preview, "|", e[0].Date)
	// Output:
	// true /note/abc
	// Untitled Note | No additional text | Jan 2, 2024
}
