// Package core holds the note domain: the Note record, the key-value Store port
// and the Repository that mirrors the note collection into a Store.
package core

import (
	"strings"
	"time"
)

// Note is the central entity of the domain.
// It is agnostic to storage format; codecs decide how it is laid out in a Store.
type Note struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Content      string `json:"content" yaml:"content"`
	LastModified int64  `json:"lastModified" yaml:"lastModified"` // Unix milliseconds
}

// IsBlank reports whether both title and content are empty after trimming whitespace.
// Blank notes are never persisted.
func (n Note) IsBlank() bool {
	return strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Content) == ""
}

// ModifiedAt returns LastModified as a time.Time.
func (n Note) ModifiedAt() time.Time {
	return time.UnixMilli(n.LastModified)
}

// EventType represents the type of change observed on a store key.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of a key in a Store, usually made by another writer.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}
