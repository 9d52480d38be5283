package store

import "sync"

// Storage is the durable key-value surface the store persists through.
// Values are serialized strings; a missing key is not an error.
type Storage interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Close() error
}

// MemoryStorage is an in-process Storage used in tests and as a
// fallback when no durable path is configured.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStorage) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
