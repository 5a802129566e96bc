package kvstore

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var boltBucket = []byte("walletkit")

// BoltStore is a Store backed by a single-bucket bbolt database, giving
// hosts a durable wallet list without an external service.
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore wraps an already opened bbolt database.
func NewBoltStore(db *bbolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// OpenBoltStore opens (or creates) a bbolt database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open bbolt db: %w", err)
	}
	return NewBoltStore(db)
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Get implements Store.
func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket(boltBucket).Get([]byte(key))
		if val != nil {
			out = make([]byte, len(val))
			copy(out, val)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: bbolt get %q: %w", key, err)
	}
	return out, nil
}

// Put implements Store.
func (s *BoltStore) Put(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("kvstore: bbolt put %q: %w", key, err)
	}
	return nil
}

// Del implements Store.
func (s *BoltStore) Del(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("kvstore: bbolt del %q: %w", key, err)
	}
	return nil
}

// ListKeys implements Store via a prefix cursor seek.
func (s *BoltStore) ListKeys(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	p := []byte(prefix)
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(boltBucket).Cursor()
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: bbolt list %q: %w", prefix, err)
	}
	return keys, nil
}
