package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/editor"
)

func newNewCmd(g *globals) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note",
		Long:  `Create a note from --title and --content. A note with both blank is discarded.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, err := g.open()
			if err != nil {
				return err
			}
			defer nb.Close()

			d, _ := nb.Editor.Enter(cmd.Context(), editor.NewNoteID)
			d.SetTitle(title)
			d.SetContent(content)
			if _, err := d.Save(cmd.Context()); err != nil {
				return err
			}

			if d.Mode() == editor.ModeNew {
				fmt.Fprintln(cmd.OutOrStdout(), "Empty note discarded.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note created: %s\n", d.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	return cmd
}

func newEditCmd(g *globals) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Update a note",
		Long: `Update the title and/or content of a note. Fields whose flag is not given are kept.
Blanking both fields deletes the note without confirmation.`,
		Args: cobra.ExactArgs(1),
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

			if cmd.Flags().Changed("title") {
				d.SetTitle(title)
			}
			if cmd.Flags().Changed("content") {
				d.SetContent(content)
			}
			if !d.Dirty() {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to change.")
				return nil
			}

			if _, err := d.Save(cmd.Context()); err != nil {
				return err
			}
			if d.Mode() == editor.ModeNew {
				fmt.Fprintf(cmd.OutOrStdout(), "Note emptied and deleted: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note saved: %s\n", d.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New content")
	return cmd
}
