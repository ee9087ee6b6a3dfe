package core

import "errors"

// Common errors.
var (
	ErrReadOnly = errors.New("store is in read-only mode")
	ErrEmptyID  = errors.New("note ID cannot be empty")
	ErrEmptyKey = errors.New("store key cannot be empty")
	ErrClosed   = errors.New("store is closed")
)
