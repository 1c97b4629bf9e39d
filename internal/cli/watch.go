package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpggio/clock/internal/display"
	"github.com/rpggio/clock/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var seconds int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the active session, refreshing every -n seconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("interval") && seconds <= 0 {
				return fmt.Errorf("refresh interval must be positive, got %d", seconds)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			interval := a.cfg.Watch.RefreshInterval()
			if cmd.Flags().Changed("interval") {
				interval = time.Duration(seconds) * time.Second
			}

			screen := newScreen(cmd)
			defer screen.Close()

			loop := watch.New(watch.Config{Interval: interval, Now: a.sessions.Now}, a.sessions, screen, a.logger)
			return watchResult(ctx, loop.Run(ctx))
		},
	}

	cmd.Flags().IntVarP(&seconds, "interval", "n", 1, "refresh interval in seconds")

	return cmd
}

// watchResult treats any error seen after ctx was canceled as an interrupt,
// which ends watch cleanly. A query cut off by the signal can fail with a
// driver error rather than context.Canceled.
func watchResult(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return nil
	}
	return err
}

// newScreen draws on the real terminal when the command writes to one,
// and prints plain lines otherwise.
func newScreen(cmd *cobra.Command) *display.Terminal {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return display.NewTerminal(f)
	}
	return display.NewWriterTerminal(cmd.OutOrStdout(), 0, 0, true)
}
