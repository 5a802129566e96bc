package bus

import "errors"

// ErrClosed is returned when publishing to a closed transport.
var ErrClosed = errors.New("event bus is closed")
