package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/editor"
)

// promptConfirmer asks on out and reads a y/N answer from in.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c promptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func newDeleteCmd(g *globals) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a note",
		Long:  `Delete permanently removes a note after confirmation.`,
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

			var c editor.Confirmer = promptConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
			if yes {
				c = editor.ConfirmFunc(func(string) bool { return true })
			}

			route, err := d.Delete(cmd.Context(), c)
			if err != nil {
				return err
			}
			if route.View != editor.ViewList {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
