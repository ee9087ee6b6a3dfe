package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/notebook/pkg/adapters/fs"
	"github.com/aretw0/notebook/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates an initialized store rooted in a fresh temp dir.
func setupStore(t *testing.T, opts ...func(*fs.Config)) (*fs.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store")
	cfg := fs.Config{Path: path}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := fs.NewStore(cfg)
	if !cfg.MustExist && !cfg.ReadOnly {
		require.NoError(t, s.Initialize(context.Background()))
	}
	return s, path
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory if Missing", func(t *testing.T) {
		_, path := setupStore(t)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		s, _ := setupStore(t, func(c *fs.Config) { c.MustExist = true })
		assert.Error(t, s.Initialize(context.Background()))
	})

	t.Run("Fails if Path Is a File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		s := fs.NewStore(fs.Config{Path: file, MustExist: true})
		assert.Error(t, s.Initialize(context.Background()))
	})
}

func TestStore_GetSet(t *testing.T) {
	s, path := setupStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "notes", `[{"id":"a"}]`))

	v, ok, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	_, err = os.Stat(filepath.Join(path, "notes"+fs.KeyExt))
	assert.NoError(t, err)

	// A fresh instance over the same directory sees the value.
	other := fs.NewStore(fs.Config{Path: path, MustExist: true})
	v, ok, err = other.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
}

func TestStore_InvalidKeys(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", `a\b`, ".hidden", fs.TempFilePrefix + "x"} {
		assert.Error(t, s.Set(ctx, key, "v"), "key %q", key)
	}
	assert.ErrorIs(t, s.Set(ctx, "", "v"), core.ErrEmptyKey)
}

func TestStore_ReadOnly(t *testing.T) {
	writable, path := setupStore(t)
	ctx := context.Background()
	require.NoError(t, writable.Set(ctx, "installPromptDismissed", "true"))

	ro := fs.NewStore(fs.Config{Path: path, ReadOnly: true})
	require.NoError(t, ro.Initialize(ctx))

	v, ok, err := ro.Get(ctx, "installPromptDismissed")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	err = ro.Set(ctx, "notes", "[]")
	assert.ErrorIs(t, err, core.ErrReadOnly)

	_, err = os.Stat(filepath.Join(path, "notes"+fs.KeyExt))
	assert.True(t, os.IsNotExist(err), "file should not exist")
}

func TestStore_Keys(t *testing.T) {
	s, path := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "notes", "[]"))
	require.NoError(t, s.Set(ctx, "installPromptDismissed", "false"))
	require.NoError(t, os.WriteFile(filepath.Join(path, "README.md"), []byte("ignored"), 0644))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"notes", "installPromptDismissed"}, keys)
}

func TestStore_State(t *testing.T) {
	s, path := setupStore(t)
	require.NoError(t, s.Set(context.Background(), "notes", "[]"))

	state, ok := s.State().(fs.StoreState)
	require.True(t, ok)
	assert.Equal(t, path, state.Path)
	assert.Equal(t, 1, state.Writes)
	assert.NotNil(t, state.LastWrite)
	assert.False(t, state.WatcherActive)
	assert.Equal(t, "fs-store", s.ComponentType())
}

func TestStore_Watch(t *testing.T) {
	s, path := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx, "notes")
	require.NoError(t, err)

	// Another process (here: another instance) writes to the same directory.
	other := fs.NewStore(fs.Config{Path: path})
	require.NoError(t, other.Set(ctx, "ignored", "x"))
	require.NoError(t, other.Set(ctx, "notes", "[]"))

	select {
	case e := <-events:
		assert.Equal(t, "notes", e.Key)
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for watch event")
	}

	cancel()
	assert.Eventually(t, func() bool {
		state := s.State().(fs.StoreState)
		return !state.WatcherActive
	}, 2*time.Second, 20*time.Millisecond)
}

func TestStore_WatchBadPattern(t *testing.T) {
	s, _ := setupStore(t)
	_, err := s.Watch(context.Background(), "[")
	assert.Error(t, err)
}

func TestRepository_OverFS(t *testing.T) {
	s, path := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := core.NewRepository(s)
	assert.Empty(t, reader.LoadAll(ctx))

	changes, err := reader.Watch(ctx)
	require.NoError(t, err)

	writer := core.NewRepository(fs.NewStore(fs.Config{Path: path}))
	require.NoError(t, writer.Save(ctx, core.Note{ID: "a", Title: "From elsewhere"}))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for reload")
	}

	n, found := reader.Find(ctx, "a")
	require.True(t, found)
	assert.Equal(t, "From elsewhere", n.Title)
}
