package fs_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/aretw0/notebook/pkg/adapters/fs"
	"github.com/aretw0/notebook/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepository_ConcurrentSaves checks that whole-collection rewrites from
// many goroutines never lose a note.
func TestRepository_ConcurrentSaves(t *testing.T) {
	s, path := setupStore(t)
	repo := core.NewRepository(s)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Save(ctx, core.Note{ID: fmt.Sprintf("note-%02d", i), Title: "t"})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	fresh := core.NewRepository(fs.NewStore(fs.Config{Path: path}))
	assert.Len(t, fresh.LoadAll(ctx), n)

	entries, err := os.ReadDir(path)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, core.DefaultNotesKey+fs.KeyExt, entries[0].Name())
}
