package cli

import (
	"github.com/rpggio/clock/internal/display"
	"github.com/spf13/cobra"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all clock-in and clock-out records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			sessions, err := a.sessions.List(cmd.Context())
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return display.WriteListJSON(cmd.OutOrStdout(), sessions)
			}
			return display.WriteList(cmd.OutOrStdout(), sessions)
		},
	}
}
