package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("skyfare")

// BoltStorage persists keys in an embedded bbolt database. Reads and
// writes are synchronous and local, so a mutation and its persist act
// as one step from the caller's perspective.
type BoltStorage struct {
	db *bolt.DB
}

func NewBolt(path string) (*BoltStorage, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("bolt open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt create bucket: %w", err)
	}

	return &BoltStorage{db: db}, nil
}

func (b *BoltStorage) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(key))
		if raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("bolt get %s: %w", key, err)
	}
	return value, found, nil
}

func (b *BoltStorage) Put(key, value string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("bolt put %s: %w", key, err)
	}
	return nil
}

func (b *BoltStorage) Close() error {
	return b.db.Close()
}
