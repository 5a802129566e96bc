package auth

import (
	"context"
	"time"
)

// Store is the session persistence capability. The manager is the only
// writer; implementations must be safe for concurrent use and must store
// whole records (no partial patches), preserving the manager's
// replace-the-record mutation discipline.
type Store interface {
	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, id string) (Session, error)
	// Save upserts the whole record. Saving a terminal record for an id
	// the expiry sweep already removed re-creates it; in-flight
	// completions are never lost to the sweeper.
	Save(ctx context.Context, sess Session) error
	// Delete removes the record; deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
	// Active returns all sessions not in a terminal step.
	Active(ctx context.Context) ([]Session, error)
	// DeleteOlderThan removes sessions whose UpdatedAt is strictly before
	// cutoff and returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
