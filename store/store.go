package store

import "sync"

// Store is a pluggable string key-value persistence layer.
// Delete of an absent key is not an error.
type Store interface {
	Lookup(key string) (string, bool)
	Put(key, value string) error
	Delete(key string) error
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (m *memoryStore) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *memoryStore) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// NewMemoryStore returns a concurrency-safe in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{values: map[string]string{}}
}
