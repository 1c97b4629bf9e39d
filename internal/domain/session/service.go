package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/clock/internal/repository"
)

// Service resolves the active session and performs clock-in/clock-out.
type Service struct {
	repo   Repository
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a new session service. A nil now uses time.Now.
func NewService(repo Repository, now func() time.Time, logger *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, now: now, logger: logger}
}

// Now returns the current instant from the service clock, without a
// monotonic reading so it compares equal after a store round trip.
func (s *Service) Now() time.Time {
	return s.now().Round(0)
}

// FindActive returns the open session, or nil if there is none.
// More than one open session fails with *InconsistentStateError.
func (s *Service) FindActive(ctx context.Context) (*Session, error) {
	open, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing open sessions: %w", err)
	}

	switch len(open) {
	case 0:
		return nil, nil
	case 1:
		active := open[0]
		return &active, nil
	default:
		ids := make([]int64, 0, len(open))
		for _, sess := range open {
			ids = append(ids, sess.ID)
		}
		s.logger.Error("multiple open sessions", "count", len(open), "ids", ids)
		return nil, &InconsistentStateError{OpenCount: len(open)}
	}
}

// ClockIn stores a new open session. It does not check for an existing
// active session; callers resolve first (see Start).
func (s *Service) ClockIn(ctx context.Context, jobName string, at time.Time) (*Session, error) {
	sess := &Session{
		JobName: jobName,
		ClockIn: at,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.logger.Debug("clocked in", "id", sess.ID, "job", sess.JobName, "at", at)
	return sess, nil
}

// ClockOut closes a copy of a previously resolved session and persists
// every field of it in one update keyed by its ID.
func (s *Service) ClockOut(ctx context.Context, sess Session, at time.Time, message string) error {
	if !sess.IsOpen() {
		return ErrAlreadyClosed
	}

	sess.Closure = &Closure{ClockOut: at, Message: message}
	if err := s.repo.Update(ctx, &sess); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("updating session: %w", err)
	}

	s.logger.Debug("clocked out", "id", sess.ID, "job", sess.JobName, "at", at)
	return nil
}

// Start clocks in under jobName unless a session is already active, in
// which case the active session is returned and nothing is written.
func (s *Service) Start(ctx context.Context, jobName string) (StartOutcome, error) {
	if strings.TrimSpace(jobName) == "" {
		return StartOutcome{}, ErrInvalidInput
	}
	at := s.Now()

	active, err := s.FindActive(ctx)
	if err != nil {
		return StartOutcome{}, err
	}
	if active != nil {
		s.logger.Info("clock-in refused, session active", "id", active.ID, "job", active.JobName)
		return StartOutcome{Active: active}, nil
	}

	started, err := s.ClockIn(ctx, jobName, at)
	if err != nil {
		return StartOutcome{}, err
	}
	return StartOutcome{Started: started}, nil
}

// Stop clocks out the active session with message. With no active
// session it returns an empty outcome and no error.
func (s *Service) Stop(ctx context.Context, message string) (StopOutcome, error) {
	active, err := s.FindActive(ctx)
	if err != nil {
		return StopOutcome{}, err
	}
	if active == nil {
		s.logger.Info("clock-out skipped, no active session")
		return StopOutcome{}, nil
	}

	at := s.Now()
	if err := s.ClockOut(ctx, *active, at, message); err != nil {
		return StopOutcome{}, err
	}

	stopped := *active
	stopped.Closure = &Closure{ClockOut: at, Message: message}
	return StopOutcome{Stopped: &stopped}, nil
}

// Get fetches a session by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return sess, nil
}

// List returns every session in insertion order.
func (s *Service) List(ctx context.Context) ([]Session, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}
