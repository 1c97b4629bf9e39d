// Package watch redraws the elapsed time of the active session until it is
// clocked out.
//
// The loop polls: each tick resolves the active session from the store,
// renders it, then sleeps for the configured interval. A clock-out made by
// another process is therefore seen at most one interval late.
package watch

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rpggio/clock/internal/display"
	"github.com/rpggio/clock/internal/domain/session"
)

// DefaultInterval is the refresh period used when none is configured.
const DefaultInterval = time.Second

// NoActiveSession is the final message shown when there is nothing to watch.
const NoActiveSession = "No active session."

// Resolver returns the active session, or nil if there is none.
type Resolver interface {
	FindActive(ctx context.Context) (*session.Session, error)
}

// Screen is where the loop draws.
type Screen interface {
	// Center clears the screen and draws text centered on it.
	Center(text string) error
	// Finish leaves the live view and prints text as the last output.
	Finish(text string) error
}

// Config configures a Loop. Zero fields take defaults.
type Config struct {
	Interval time.Duration
	Now      func() time.Time
	// Sleep waits for d or until ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Loop is the watch state machine: it polls while a session is active and
// stops for good the first time none is.
type Loop struct {
	resolver Resolver
	screen   Screen
	interval time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	logger   *slog.Logger
}

// New creates a watch loop.
func New(cfg Config, resolver Resolver, screen Screen, logger *slog.Logger) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = Sleep
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Loop{
		resolver: resolver,
		screen:   screen,
		interval: cfg.Interval,
		now:      cfg.Now,
		sleep:    cfg.Sleep,
		logger:   logger,
	}
}

// Run ticks until no session is active, the resolver or screen fails, or
// ctx is canceled. It returns nil only in the first case.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("watch started", "interval", l.interval)

	for ticks := 0; ; ticks++ {
		active, err := l.resolver.FindActive(ctx)
		if err != nil {
			return err
		}
		if active == nil {
			l.logger.Debug("watch finished, no active session", "ticks", ticks)
			return l.screen.Finish(NoActiveSession)
		}

		elapsed := l.now().Sub(active.ClockIn)
		if err := l.screen.Center(display.Banner(active.JobName, elapsed)); err != nil {
			return err
		}

		if err := l.sleep(ctx, l.interval); err != nil {
			return err
		}
	}
}

// Sleep blocks for d, returning early with ctx.Err() if ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
