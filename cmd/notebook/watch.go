package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/adapters/lifecycle"
)

func newWatchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print note changes made by other processes",
		Long:  `Watch follows the notes collection until interrupted. Only the fs store can be watched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			nb, err := g.open()
			if err != nil {
				return err
			}
			defer nb.Close()

			nb.Notes.LoadAll(ctx)
			src := lifecycle.NewSource(nb.Notes)
			if err := src.Start(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Watching for changes (Ctrl+C to stop)...")
			for e := range src.Events() {
				fmt.Fprintf(out, "%v: %d notes\n", e, len(nb.Notes.Snapshot(ctx)))
			}
			return nil
		},
	}
}
