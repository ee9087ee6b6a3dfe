package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/listing"
)

func newListCmd(g *globals) *cobra.Command {
	var (
		asJSON bool
		recent bool
		utc    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, err := g.open()
			if err != nil {
				return err
			}
			defer nb.Close()

			opts := []listing.Option{}
			if recent {
				opts = append(opts, listing.WithSort(listing.SortRecent))
			}
			if utc {
				opts = append(opts, listing.WithLocation(time.UTC))
			}
			entries := listing.Project(nb.Notes.LoadAll(cmd.Context()), opts...)

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, listing.EmptyState.Heading)
				fmt.Fprintln(out, listing.EmptyState.Body)
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s  %s\n    %s\n", e.ID, e.Date, e.Title, e.Preview)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&recent, "recent", false, "Most recently modified first")
	cmd.Flags().BoolVar(&utc, "utc", false, "Render dates in UTC")
	return cmd
}
