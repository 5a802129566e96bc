package auth

import "errors"

// ErrSessionNotFound is returned by stores when no record exists for the
// given session id.
var ErrSessionNotFound = errors.New("auth session not found")
