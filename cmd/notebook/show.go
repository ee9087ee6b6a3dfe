package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/editor"
)

func newShowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, err := g.open()
			if err != nil {
				return err
			}
			defer nb.Close()

			d, res := nb.Editor.Enter(cmd.Context(), args[0])
			if res != editor.ResultFound {
				return fmt.Errorf("note not found: %s", args[0])
			}

			n := d.Note()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", n.Title)
			fmt.Fprintf(out, "(%s, %s)\n\n", n.ID, n.ModifiedAt().Format("2006-01-02 15:04:05"))
			fmt.Fprintln(out, n.Content)
			return nil
		},
	}
}
