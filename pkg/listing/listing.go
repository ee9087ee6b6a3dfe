// Package listing projects a note collection into list entries for display.
// It is read-only: nothing here mutates notes.
package listing

import (
	"sort"
	"time"

	"github.com/aretw0/notebook/pkg/core"
)

const (
	// UntitledTitle replaces an empty title.
	UntitledTitle = "Untitled Note"
	// EmptyPreview replaces an empty preview.
	EmptyPreview = "No additional text"
	// PreviewLength is the maximum number of characters in a preview.
	PreviewLength = 100
	// DefaultDateLayout renders dates like "Jan 2, 2006".
	DefaultDateLayout = "Jan 2, 2006"
)

// EmptyState is the copy shown when there are no notes.
var EmptyState = struct {
	Heading string
	Body    string
}{
	Heading: "No notes yet",
	Body:    "Click the '+' button to create your first note.",
}

// Sort selects the entry order.
type Sort int

const (
	// SortStorage keeps the collection order.
	SortStorage Sort = iota
	// SortRecent orders by LastModified, newest first. Ties keep storage order.
	SortRecent
)

// Entry is one row of the list.
type Entry struct {
	ID           string
	Title        string
	Preview      string
	Date         string
	LastModified int64
}

type options struct {
	sort     Sort
	location *time.Location
	layout   string
}

// Option configures Project.
type Option func(*options)

func WithSort(s Sort) Option {
	return func(o *options) { o.sort = s }
}

// WithLocation sets the time zone dates are rendered in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

func WithDateLayout(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.layout = layout
		}
	}
}

// Project maps notes to entries.
func Project(notes []core.Note, opts ...Option) []Entry {
	o := options{
		sort:     SortStorage,
		location: time.Local,
		layout:   DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	entries := make([]Entry, 0, len(notes))
	for _, n := range notes {
		entries = append(entries, Entry{
			ID:           n.ID,
			Title:        Title(n),
			Preview:      Preview(n),
			Date:         n.ModifiedAt().In(o.location).Format(o.layout),
			LastModified: n.LastModified,
		})
	}

	if o.sort == SortRecent {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].LastModified > entries[j].LastModified
		})
	}
	return entries
}

// Title is the display title of n.
func Title(n core.Note) string {
	if n.Title == "" {
		return UntitledTitle
	}
	return n.Title
}

// Preview is the first PreviewLength characters of n's content.
func Preview(n core.Note) string {
	p := truncate(n.Content, PreviewLength)
	if p == "" {
		return EmptyPreview
	}
	return p
}

func truncate(s string, max int) string {
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
