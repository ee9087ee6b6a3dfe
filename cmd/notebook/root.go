package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook"
	"github.com/aretw0/notebook/internal/config"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	verbose    bool
	configPath string
	store      string
	path       string
	codec      string
	logger     *slog.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "notebook",
		Short: "A local-first note-taking engine",
		Long: `notebook keeps an ordered collection of notes in a local key-value store.
Notes are created and edited through drafts; blank notes are never kept.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			opts := &slog.HandlerOptions{
				Level: level,
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(g.logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&g.configPath, "config", "", "Config file (default ./notebook.yaml)")
	flags.StringVar(&g.store, "store", "", "Storage adapter: fs, memory, badger or sqlite")
	flags.StringVar(&g.path, "path", "", "Store location")
	flags.StringVar(&g.codec, "codec", "", "Collection encoding: json or yaml")

	rootCmd.AddCommand(
		newListCmd(g),
		newShowCmd(g),
		newNewCmd(g),
		newEditCmd(g),
		newDeleteCmd(g),
		newInstallPromptCmd(g),
		newWatchCmd(g),
		newVersionCmd(),
	)
	return rootCmd
}

// open loads the configuration, applies flag overrides and opens the notebook.
func (g *globals) open() (*notebook.Notebook, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.store != "" {
		cfg.Store = g.store
	}
	if g.path != "" {
		cfg.Path = g.path
	}
	if g.codec != "" {
		cfg.Codec = g.codec
	}

	logger := g.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("opening notebook", "store", cfg.Store, "path", cfg.Path, "codec", cfg.Codec)

	nb, err := notebook.New(cfg.Path, cfg.Options(logger)...)
	if err != nil {
		return nil, fmt.Errorf("failed to open notebook: %w", err)
	}
	return nb, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
