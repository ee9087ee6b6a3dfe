package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/install"
)

func newInstallPromptCmd(g *globals) *cobra.Command {
	var (
		userAgent  string
		standalone bool
		dismiss    bool
	)

	cmd := &cobra.Command{
		Use:   "install-prompt",
		Short: "Evaluate the add-to-home-screen prompt for a user agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, err := g.open()
			if err != nil {
				return err
			}
			defer nb.Close()

			out := cmd.OutOrStdout()
			if dismiss {
				if err := nb.Prompt.Dismiss(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out, "Install prompt dismissed.")
				return nil
			}

			state := nb.Prompt.Activate(cmd.Context(), install.Environment{
				UserAgent:  userAgent,
				Standalone: standalone,
			})
			fmt.Fprintf(out, "state: %s\n", state)
			if in, ok := nb.Prompt.Instructions(); ok {
				fmt.Fprintf(out, "platform: %s\n%s\n%s\n", nb.Prompt.Platform(), in.Heading, in.Steps)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userAgent, "user-agent", "", "Client user-agent string")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "The app already runs installed")
	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "Dismiss the prompt permanently")
	return cmd
}
