package session

import "time"

// Session is one clock-in/clock-out work record.
type Session struct {
	ID      int64
	JobName string
	ClockIn time.Time
	// Closure is nil while the session is open.
	Closure *Closure
}

// Closure holds the fields written together at clock-out.
type Closure struct {
	ClockOut time.Time
	Message  string
}

// IsOpen reports whether the session has not been clocked out.
func (s Session) IsOpen() bool {
	return s.Closure == nil
}

// Elapsed returns the time worked: up to clock-out for a closed session,
// up to now for an open one.
func (s Session) Elapsed(now time.Time) time.Duration {
	if s.Closure != nil {
		return s.Closure.ClockOut.Sub(s.ClockIn)
	}
	return now.Sub(s.ClockIn)
}

// StartOutcome is the result of a guarded clock-in.
// Exactly one of Started and Active is set.
type StartOutcome struct {
	Started *Session
	// Active is the session that blocked the clock-in.
	Active *Session
}

// StopOutcome is the result of a guarded clock-out.
// Stopped is nil when there was no active session.
type StopOutcome struct {
	Stopped *Session
}
