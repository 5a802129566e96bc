package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session records in redis as JSON under a shared prefix.
// Each record carries a TTL slightly above the session timeout, so redis
// itself garbage-collects records the sweep never reaches (a crashed tab,
// for instance).
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a redis-backed session store. An empty prefix
// defaults to "walletkit:auth"; a zero ttl disables redis-side expiry.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "walletkit:auth"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + ":" + id
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("auth: redis get session %q: %w", id, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("auth: decode session %q: %w", id, err)
	}
	return sess, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("auth: encode session %q: %w", sess.ID, err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("auth: redis save session %q: %w", sess.ID, err)
	}
	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("auth: redis delete session %q: %w", id, err)
	}
	return nil
}

// Active implements Store by scanning the prefix.
func (s *RedisStore) Active(ctx context.Context) ([]Session, error) {
	var active []Session
	err := s.scan(ctx, func(sess Session) error {
		if !sess.Step.Terminal() {
			active = append(active, sess)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return active, nil
}

// DeleteOlderThan implements Store by scanning the prefix.
func (s *RedisStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0
	err := s.scan(ctx, func(sess Session) error {
		if !sess.UpdatedAt.Before(cutoff) {
			return nil
		}
		if err := s.client.Del(ctx, s.key(sess.ID)).Err(); err != nil {
			return fmt.Errorf("auth: redis delete session %q: %w", sess.ID, err)
		}
		removed++
		return nil
	})
	return removed, err
}

func (s *RedisStore) scan(ctx context.Context, fn func(Session) error) error {
	iter := s.client.Scan(ctx, 0, s.prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue // expired between scan and get
		}
		if err != nil {
			return fmt.Errorf("auth: redis get %q: %w", iter.Val(), err)
		}

		var sess Session
		if err := json.Unmarshal(data, &sess); err != nil {
			return fmt.Errorf("auth: decode %q: %w", iter.Val(), err)
		}
		if err := fn(sess); err != nil {
			return err
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("auth: redis scan: %w", err)
	}
	return nil
}
