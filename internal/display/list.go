package display

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rpggio/clock/internal/domain/session"
)

// TimeLayout is how timestamps are printed.
const TimeLayout = "2006-01-02 15:04:05"

const none = "None"

// WriteList prints one line per session.
func WriteList(w io.Writer, sessions []session.Session) error {
	for _, s := range sessions {
		clockOut, message := none, none
		if s.Closure != nil {
			clockOut = s.Closure.ClockOut.Format(TimeLayout)
			message = s.Closure.Message
		}

		if _, err := fmt.Fprintf(w, "Job Name: %s | Job ID: %d | Clock In: %s | Clock Out: %s | Message: %s\n",
			s.JobName,
			s.ID,
			s.ClockIn.Format(TimeLayout),
			clockOut,
			message); err != nil {
			return err
		}
	}
	return nil
}

// SessionJSON is the JSON form of a session.
type SessionJSON struct {
	ID       int64      `json:"id"`
	JobName  string     `json:"job_name"`
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out"`
	Message  *string    `json:"message"`
	Duration string     `json:"duration,omitempty"`
}

// WriteListJSON prints the sessions as an indented JSON array.
func WriteListJSON(w io.Writer, sessions []session.Session) error {
	out := make([]SessionJSON, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToJSON(s))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ToJSON converts s to its JSON form. Closed sessions carry their duration.
func ToJSON(s session.Session) SessionJSON {
	v := SessionJSON{
		ID:      s.ID,
		JobName: s.JobName,
		ClockIn: s.ClockIn,
	}
	if s.Closure != nil {
		clockOut := s.Closure.ClockOut
		message := s.Closure.Message
		v.ClockOut = &clockOut
		v.Message = &message
		v.Duration = session.FormatDuration(s.Elapsed(clockOut))
	}
	return v
}
