package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety: passing a nil
// error or empty id produces an empty Attr that slog drops, so call sites
// never need explicit checks.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// SessionID creates an attribute for authentication session identifiers.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// Method creates an attribute for the login method in use.
func Method(method string) slog.Attr {
	if method == "" {
		return slog.Attr{}
	}
	return slog.String("method", method)
}

// Address creates an attribute for a wallet address.
func Address(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("address", addr)
}

// Network creates an attribute for the network namespace.
func Network(network string) slog.Attr {
	if network == "" {
		return slog.Attr{}
	}
	return slog.String("network", network)
}

// EventName creates an attribute for a bus event name.
func EventName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("event", name)
}

// Count creates a generic count attribute.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
