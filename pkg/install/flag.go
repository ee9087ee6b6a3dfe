package install

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/notebook/pkg/core"
)

// DefaultFlagKey is the store key of the dismissal flag.
const DefaultFlagKey = "installPromptDismissed"

// Flag is a boolean persisted as JSON under its own store key.
type Flag struct {
	store  core.Store
	key    string
	logger *slog.Logger
}

// NewFlag binds a flag to key in store.
func NewFlag(store core.Store, key string, logger *slog.Logger) *Flag {
	if key == "" {
		key = DefaultFlagKey
	}
	return &Flag{store: store, key: key, logger: logger}
}

// Key returns the store key.
func (f *Flag) Key() string { return f.key }

// Get reads the flag. Anything but a stored true reads as false.
func (f *Flag) Get(ctx context.Context) bool {
	raw, ok, err := f.store.Get(ctx, f.key)
	if err != nil {
		f.warn("failed to read flag", err)
		return false
	}
	if !ok {
		return false
	}

	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		f.warn("failed to decode flag", err)
		return false
	}
	return v
}

// Set persists v.
func (f *Flag) Set(ctx context.Context, v bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := f.store.Set(ctx, f.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", f.key, err)
	}
	return nil
}

func (f *Flag) warn(msg string, err error) {
	if f.logger != nil {
		f.logger.Warn(msg, "key", f.key, "error", err)
	}
}
