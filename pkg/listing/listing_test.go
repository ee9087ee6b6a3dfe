package listing_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/notebook/pkg/core"
	"github.com/aretw0/notebook/pkg/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Fallbacks(t *testing.T) {
	notes := []core.Note{
		{ID: "a", Title: "", Content: "body only"},
		{ID: "b", Title: "title only", Content: ""},
	}

	entries := listing.Project(notes, listing.WithLocation(time.UTC))
	require.Len(t, entries, 2)

	assert.Equal(t, listing.UntitledTitle, entries[0].Title)
	assert.Equal(t, "body only", entries[0].Preview)
	assert.Equal(t, "title only", entries[1].Title)
	assert.Equal(t, listing.EmptyPreview, entries[1].Preview)
}

func TestProject_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("é", 150)
	entries := listing.Project([]core.Note{{ID: "a", Content: long}})
	require.Len(t, entries, 1)
	assert.Equal(t, strings.Repeat("é", listing.PreviewLength), entries[0].Preview)

	exact := strings.Repeat("x", listing.PreviewLength)
	entries = listing.Project([]core.Note{{ID: "a", Content: exact}})
	assert.Equal(t, exact, entries[0].Preview)
}

func TestProject_Date(t *testing.T) {
	ms := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.UTC).UnixMilli()
	notes := []core.Note{{ID: "a", Title: "t", LastModified: ms}}

	entries := listing.Project(notes, listing.WithLocation(time.UTC))
	assert.Equal(t, "Mar 5, 2024", entries[0].Date)
	assert.Equal(t, ms, entries[0].LastModified)

	tokyo := time.FixedZone("JST", 9*60*60)
	entries = listing.Project(notes, listing.WithLocation(tokyo), listing.WithDateLayout("2006-01-02"))
	assert.Equal(t, "2024-03-06", entries[0].Date)
}

func TestProject_Sort(t *testing.T) {
	notes := []core.Note{
		{ID: "old", LastModified: 1},
		{ID: "new", LastModified: 3},
		{ID: "tie-first", LastModified: 2},
		{ID: "tie-second", LastModified: 2},
	}

	ids := func(entries []listing.Entry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.ID
		}
		return out
	}

	assert.Equal(t, []string{"old", "new", "tie-first", "tie-second"}, ids(listing.Project(notes)))
	assert.Equal(t, []string{"new", "tie-first", "tie-second", "old"},
		ids(listing.Project(notes, listing.WithSort(listing.SortRecent))))

	// The input is untouched.
	assert.Equal(t, "old", notes[0].ID)
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, listing.Project(nil))
	assert.Equal(t, "No notes yet", listing.EmptyState.Heading)
}
