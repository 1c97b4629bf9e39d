package cli

import (
	"fmt"
	"strings"

	"github.com/rpggio/clock/internal/display"
	"github.com/rpggio/clock/internal/domain/session"
	"github.com/spf13/cobra"
)

func newInCommand(opts *rootOptions) *cobra.Command {
	var job string

	cmd := &cobra.Command{
		Use:   "in",
		Short: "Clock in under a job name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job = strings.TrimSpace(job)
			if job == "" {
				return fmt.Errorf("a job name is required, use --job <name>")
			}

			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			outcome, err := a.sessions.Start(cmd.Context(), job)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if active := outcome.Active; active != nil {
				if opts.jsonOutput {
					return outputJSON(out, map[string]any{"clocked_in": false, "active": display.ToJSON(*active)})
				}
				fmt.Fprintln(out, "There is currently an active session. Clock out first.")
				fmt.Fprintf(out, "Job Name: %s | Job ID: %d\n", active.JobName, active.ID)
				fmt.Fprintln(out, "Consider running `clock out -m <message>` to end the current session.")
				return nil
			}

			started := outcome.Started
			if opts.jsonOutput {
				return outputJSON(out, map[string]any{"clocked_in": true, "session": display.ToJSON(*started)})
			}
			fmt.Fprintf(out, "Clock in to %s at %s, job id %d\n",
				started.JobName, started.ClockIn.Format(display.TimeLayout), started.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&job, "job", "j", "", "job name to clock in under (required)")

	return cmd
}

func newOutCommand(opts *rootOptions) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "out",
		Short: "Clock out of the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("message") {
				fmt.Fprintln(out, "A message is required to clock out. Use -m <message>.")
				return nil
			}

			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			outcome, err := a.sessions.Stop(cmd.Context(), message)
			if err != nil {
				return err
			}

			stopped := outcome.Stopped
			if stopped == nil {
				if opts.jsonOutput {
					return outputJSON(out, map[string]any{"clocked_out": false})
				}
				fmt.Fprintln(out, "There is no active session. Clock in first.")
				return nil
			}

			if opts.jsonOutput {
				return outputJSON(out, map[string]any{"clocked_out": true, "session": display.ToJSON(*stopped)})
			}
			fmt.Fprintf(out, "Clock out of %s at %s after %s\n",
				stopped.JobName,
				stopped.Closure.ClockOut.Format(display.TimeLayout),
				session.FormatDuration(stopped.Elapsed(stopped.Closure.ClockOut)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message to add to the clock-out log")

	return cmd
}
