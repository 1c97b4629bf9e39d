package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound indicates the session doesn't exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidInput indicates invalid session input.
	ErrInvalidInput = errors.New("invalid session input")
	// ErrAlreadyClosed indicates the session was already clocked out.
	ErrAlreadyClosed = errors.New("session already clocked out")
	// ErrInconsistentState matches any *InconsistentStateError.
	ErrInconsistentState = errors.New("inconsistent session state")
)

// InconsistentStateError reports more than one open session in the store.
// It is never repaired automatically; one of the sessions has to be closed by hand.
type InconsistentStateError struct {
	OpenCount int
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("%d open sessions found, expected at most one", e.OpenCount)
}

// Is makes errors.Is(err, ErrInconsistentState) hold.
func (e *InconsistentStateError) Is(target error) bool {
	return target == ErrInconsistentState
}
