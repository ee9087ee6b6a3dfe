package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/notebook/pkg/adapters/sqlite"
	"github.com/aretw0/notebook/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s, err := sqlite.Open(sqlite.MemoryDSN, nil)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "notes", "[]"))
	require.NoError(t, s.Set(ctx, "notes", `[{"id":"a"}]`))

	v, ok, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, keys)

	assert.ErrorIs(t, s.Set(ctx, "", "v"), core.ErrEmptyKey)
}

func TestStore_Persistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebook.db")
	ctx := context.Background()

	s, err := sqlite.Open(path, nil)
	require.NoError(t, err)
	repo := core.NewRepository(s)
	require.NoError(t, repo.Save(ctx, core.Note{ID: "a", Title: "Groceries", Content: "Milk, eggs"}))
	require.NoError(t, s.Close())

	reopened, err := sqlite.Open(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	notes := core.NewRepository(reopened).LoadAll(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, "Milk, eggs", notes[0].Content)
}

func TestStore_Closed(t *testing.T) {
	s, err := sqlite.Open(sqlite.MemoryDSN, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, _, err = s.Get(context.Background(), "notes")
	assert.ErrorIs(t, err, core.ErrClosed)
	assert.Equal(t, "sqlite-store", s.ComponentType())
}
