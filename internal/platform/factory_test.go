package platform_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/notebook/internal/platform"
	"github.com/aretw0/notebook/pkg/core"
	"github.com/aretw0/notebook/pkg/editor"
	"github.com/aretw0/notebook/pkg/install"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EndToEnd(t *testing.T) {
	for _, adapter := range []string{platform.AdapterFS, platform.AdapterMemory, platform.AdapterBadger, platform.AdapterSQLite} {
		t.Run(adapter, func(t *testing.T) {
			ctx := context.Background()
			nb, err := platform.New(t.TempDir(), platform.WithAdapter(adapter))
			require.NoError(t, err)
			defer nb.Close()

			d, res := nb.Editor.Enter(ctx, editor.NewNoteID)
			require.Equal(t, editor.ResultNew, res)
			d.SetTitle("Groceries")
			d.SetContent("Milk, eggs")
			_, err = d.Save(ctx)
			require.NoError(t, err)

			notes := nb.Notes.LoadAll(ctx)
			require.Len(t, notes, 1)
			assert.Equal(t, "Groceries", notes[0].Title)

			nb.Prompt.Activate(ctx, install.Environment{UserAgent: "Android"})
			require.NoError(t, nb.Prompt.Dismiss(ctx))
			assert.True(t, install.NewFlag(nb.Store, "", nil).Get(ctx))
		})
	}
}

func TestNew_Options(t *testing.T) {
	ctx := context.Background()
	at := time.UnixMilli(1_700_000_000_000)

	nb, err := platform.New("",
		platform.WithAdapter(platform.AdapterMemory),
		platform.WithCodec("yaml"),
		platform.WithNotesKey("my-notes"),
		platform.WithFlagKey("my-flag"),
		platform.WithClock(func() time.Time { return at }),
	)
	require.NoError(t, err)
	defer nb.Close()

	require.NoError(t, nb.Notes.Save(ctx, core.Note{ID: "a", Title: "t"}))

	raw, ok, err := nb.Store.Get(ctx, "my-notes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, "title: t")
	assert.Contains(t, raw, "lastModified: 1700000000000")

	state := nb.Notes.State().(core.RepositoryState)
	assert.Equal(t, "yaml", state.Codec)

	promptState := nb.Prompt.State().(install.PromptState)
	assert.Equal(t, "my-flag", promptState.FlagKey)
}

func TestNew_UnknownCodec(t *testing.T) {
	_, err := platform.New("", platform.WithAdapter(platform.AdapterMemory), platform.WithCodec("toml"))
	assert.Error(t, err)
}
