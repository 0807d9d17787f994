package utilities

import (
	"time"

	"github.com/mongodb/grip/message"
)

// Stopwatch measures wall-clock time for run footers.
type Stopwatch struct {
	start time.Time
}

// StartStopwatch returns a running stopwatch.
func StartStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the stopwatch started.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Message builds a loggable payload reporting the elapsed time.
func (s *Stopwatch) Message(msg string) message.Fields {
	return message.Fields{
		"message":  msg,
		"dur_secs": s.Elapsed().Seconds(),
	}
}
