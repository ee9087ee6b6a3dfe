package core

import "context"

// Store defines the contract for durable key to string storage.
// A Store is scoped to one application origin; keys never collide across origins.
// Adhering to this interface keeps the repository independent of the underlying
// mechanism (files, embedded databases, memory).
type Store interface {
	// Get returns the value stored under key.
	// ok is false when the key was never set; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the whole value stored under key.
	Set(ctx context.Context, key, value string) error
}

// Watchable defines an interface for stores that report changes made by other writers.
type Watchable interface {
	// Watch emits an Event for every change of a key matching pattern (doublestar glob).
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
