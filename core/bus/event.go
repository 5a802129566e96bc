package bus

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope carried by every transport.
type Event struct {
	ID        string    `json:"id"`         // unique envelope identifier
	Name      string    `json:"name"`       // payload type name, e.g. "AuthSucceeded"
	Payload   any       `json:"payload"`    // the typed event value
	CreatedAt time.Time `json:"created_at"` // stamped at publish time
}

// NewEvent wraps a payload in an envelope with a fresh ID and timestamp.
// The event name is the payload's bare type name (pointers unwrapped), so
// distinct event types must carry distinct type names.
func NewEvent(payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      eventName(payload),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

func eventName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
