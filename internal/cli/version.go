package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/rpggio/clock/internal/cli.Version=... -X ...Mode=debug".
var (
	Version = "dev"
	Mode    = "release"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clock v%s-%s\n", Version, Mode)
		},
	}
}
