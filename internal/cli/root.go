package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rpggio/clock/internal/domain/session"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitInconsistent = 2
)

type rootOptions struct {
	configPath string
	dbPath     string
	jsonOutput bool
}

// NewRootCommand builds the clock command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "clock",
		Short: "Clock in/out for work",
		Long: `clock tracks work sessions in a local SQLite database.
Clock in under a job name, clock out with a message, list past sessions,
or watch the running time of the active session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $CLOCK_CONFIG_PATH)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "path to the database file (default ~/.clockdb)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")

	root.AddCommand(
		newInCommand(opts),
		newOutCommand(opts),
		newWatchCommand(opts),
		newListCommand(opts),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	code := ExitCode(err)
	if code == ExitInconsistent {
		fmt.Fprintf(stderr, "clock: inconsistent state: %v\n", err)
		fmt.Fprintln(stderr, "Close all but one open session by hand, then try again.")
	} else {
		fmt.Fprintf(stderr, "clock: %v\n", err)
	}
	return code
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, session.ErrInconsistentState):
		return ExitInconsistent
	default:
		return ExitError
	}
}

// Main is the entry point used by cmd/clock.
func Main() {
	os.Exit(Execute(os.Args[1:], os.Stderr))
}
