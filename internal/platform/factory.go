package platform

import (
	"io"

	"github.com/aretw0/notebook/pkg/core"
	"github.com/aretw0/notebook/pkg/editor"
	"github.com/aretw0/notebook/pkg/install"
)

// Notebook wires a store to the note repository, the editor and the install
// prompt. Close releases the store.
type Notebook struct {
	Store  core.Store
	Notes  *core.Repository
	Editor *editor.Editor
	Prompt *install.Prompt

	closer io.Closer
}

// New opens the store at uri and builds every component on top of it.
//
//	nb, err := platform.New("./notes", platform.WithAdapter("sqlite"))
func New(uri string, opts ...Option) (*Notebook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	codec, err := core.CodecByName(o.codec)
	if err != nil {
		return nil, err
	}

	store, closer, err := openStore(uri, o)
	if err != nil {
		return nil, err
	}

	repoOpts := []core.RepositoryOption{
		core.WithCodec(codec),
		core.WithNotesKey(o.notesKey),
		core.WithLogger(o.logger),
		core.WithEventBuffer(o.eventBuffer),
	}
	editorOpts := []editor.Option{editor.WithLogger(o.logger)}
	if o.clock != nil {
		repoOpts = append(repoOpts, core.WithClock(o.clock))
		editorOpts = append(editorOpts, editor.WithClock(o.clock))
	}

	notes := core.NewRepository(store, repoOpts...)

	promptOpts := []install.Option{install.WithLogger(o.logger)}
	if o.flagKey != "" {
		promptOpts = append(promptOpts, install.WithFlagKey(o.flagKey))
	}

	if o.logger != nil {
		o.logger.Debug("notebook opened", "adapter", o.adapter, "codec", codec.Name(), "notes_key", o.notesKey)
	}

	return &Notebook{
		Store:  store,
		Notes:  notes,
		Editor: editor.New(notes, editorOpts...),
		Prompt: install.NewPrompt(store, promptOpts...),
		closer: closer,
	}, nil
}

// Close releases the underlying store, if it holds resources.
func (n *Notebook) Close() error {
	if n.closer == nil {
		return nil
	}
	return n.closer.Close()
}
