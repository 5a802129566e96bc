package auth

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MemoryStore is the default in-process session store: a mutex-guarded map
// of whole session records.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return copySession(sess), nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, sess Session) error {
	stored := copySession(sess)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = stored
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Active implements Store.
func (s *MemoryStore) Active(_ context.Context) ([]Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []Session
	for _, sess := range s.sessions {
		if !sess.Step.Terminal() {
			active = append(active, copySession(sess))
		}
	}
	return active, nil
}

// DeleteOlderThan implements Store.
func (s *MemoryStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// copySession detaches the Data map so callers cannot alias stored state.
func copySession(sess Session) Session {
	if sess.Data != nil {
		sess.Data = maps.Clone(sess.Data)
	}
	return sess
}
