package core

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	NotesKey  string `json:"notes_key"`
	Codec     string `json:"codec"`
	Loaded    bool   `json:"loaded"`
	NoteCount int    `json:"note_count"`
	StoreType string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	storeType := "unknown"
	if r.store != nil {
		storeType = "store"
		// Try to get component type if store implements introspection.Component
		if comp, ok := r.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return RepositoryState{
		NotesKey:  r.key,
		Codec:     r.codec.Name(),
		Loaded:    r.loaded,
		NoteCount: len(r.notes),
		StoreType: storeType,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
