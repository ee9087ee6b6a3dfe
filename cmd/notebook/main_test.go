package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebook/pkg/listing"
)

// run executes the CLI against the store at dir and returns stdout.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--path", dir}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func listIDs(t *testing.T, dir string) []listing.Entry {
	t.Helper()
	out, err := run(t, dir, "", "list", "--json")
	require.NoError(t, err)

	var entries []listing.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	return entries
}

func TestCLI_Lifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, listing.EmptyState.Heading)

	out, err = run(t, dir, "", "new", "--title", "Groceries", "--content", "Milk")
	require.NoError(t, err)
	require.Contains(t, out, "Note created: ")
	id := strings.TrimSpace(strings.TrimPrefix(out, "Note created: "))

	out, err = run(t, dir, "", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "# Groceries")
	assert.Contains(t, out, "Milk")

	_, err = run(t, dir, "", "edit", id, "--content", "Milk, eggs")
	require.NoError(t, err)

	entries := listIDs(t, dir)
	require.Len(t, entries, 1)
	assert.Equal(t, "Groceries", entries[0].Title)
	assert.Equal(t, "Milk, eggs", entries[0].Preview)

	// Declined confirmation keeps the note.
	out, err = run(t, dir, "n\n", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to delete this note?")
	assert.Contains(t, out, "Cancelled.")
	assert.Len(t, listIDs(t, dir), 1)

	out, err = run(t, dir, "y\n", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Note deleted: "+id)
	assert.Empty(t, listIDs(t, dir))
}

func TestCLI_BlankNotes(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "new", "--title", "  ")
	require.NoError(t, err)
	assert.Contains(t, out, "Empty note discarded.")
	assert.Empty(t, listIDs(t, dir))

	out, err = run(t, dir, "", "new", "--title", "Temp")
	require.NoError(t, err)
	id := strings.TrimSpace(strings.TrimPrefix(out, "Note created: "))

	out, err = run(t, dir, "", "edit", id, "--title", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Note emptied and deleted")
	assert.Empty(t, listIDs(t, dir))
}

func TestCLI_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "show", "missing")
	assert.ErrorContains(t, err, "note not found")
	_, err = run(t, dir, "", "edit", "missing", "--title", "x")
	assert.ErrorContains(t, err, "note not found")
	_, err = run(t, dir, "", "delete", "missing", "--yes")
	assert.ErrorContains(t, err, "note not found")
}

func TestCLI_InstallPrompt(t *testing.T) {
	dir := t.TempDir()
	iphone := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"

	out, err := run(t, dir, "", "install-prompt", "--user-agent", iphone)
	require.NoError(t, err)
	assert.Contains(t, out, "state: visible")
	assert.Contains(t, out, "Install this app on your iPhone:")

	out, err = run(t, dir, "", "install-prompt", "--user-agent", iphone, "--standalone")
	require.NoError(t, err)
	assert.Contains(t, out, "state: hidden")

	_, err = run(t, dir, "", "install-prompt", "--dismiss")
	require.NoError(t, err)

	out, err = run(t, dir, "", "install-prompt", "--user-agent", iphone)
	require.NoError(t, err)
	assert.Contains(t, out, "state: suspended-dismissed")
	assert.NotContains(t, out, "Install this app")
}

func TestCLI_Stores(t *testing.T) {
	for _, store := range []string{"badger", "sqlite"} {
		t.Run(store, func(t *testing.T) {
			dir := t.TempDir()
			_, err := run(t, dir, "", "--store", store, "new", "--title", "Persisted")
			require.NoError(t, err)

			out, err := run(t, dir, "", "--store", store, "list")
			require.NoError(t, err)
			assert.Contains(t, out, "Persisted")
		})
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "notebook version 0.1.0")
}

func TestCLI_WatchUnsupportedStore(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "--store", "sqlite", "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support watching")
}
