package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the ephemeral record of one authentication attempt. Sessions
// use value semantics: every mutation fully replaces the stored record and
// re-stamps UpdatedAt, so concurrent readers never observe a half-written
// transition.
type Session struct {
	ID     string         `json:"id"`
	Method Method         `json:"method"`
	Step   Step           `json:"step"`
	Data   map[string]any `json:"data,omitempty"`
	Error  *Error         `json:"error,omitempty"`
	// UpdatedAt is the last-mutation time; the expiry sweep compares
	// against it.
	UpdatedAt time.Time `json:"updated_at"`
}

// newSessionID builds a "<method>-<millis>-<random>" identifier. Uniqueness
// is UI-scale, not cryptographic: the random suffix makes collisions between
// calls in the same millisecond negligible.
func newSessionID(method Method, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", method, now.UnixMilli(), uuid.NewString()[:8])
}

// newSession creates an initiated session record.
func newSession(method Method, now time.Time) Session {
	return Session{
		ID:        newSessionID(method, now),
		Method:    method,
		Step:      StepInitiated,
		Data:      map[string]any{},
		UpdatedAt: now,
	}
}

// withStep returns a copy of the session advanced to step, stamped at now.
func (s Session) withStep(step Step, now time.Time) Session {
	s.Step = step
	s.Error = nil
	s.UpdatedAt = now
	return s
}

// withFailure returns a terminal failed copy carrying the classified error.
func (s Session) withFailure(authErr *Error, now time.Time) Session {
	s.Step = StepFailed
	s.Error = authErr
	s.UpdatedAt = now
	return s
}
