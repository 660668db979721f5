package services

import (
	"context"
	"sync"
)

// Storage is the key-value capability behind a visitor's persisted state
// (theme preference, admin event list). A missing key is reported with
// ok=false, not an error.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage keeps values in process memory
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get retrieves a value
func (s *MemoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores a value
func (s *MemoryStorage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete removes a value
func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// namespacedStorage scopes every key under a prefix
type namespacedStorage struct {
	inner     Storage
	namespace string
}

// Namespaced returns a view of storage where every key is prefixed with
// namespace, so each visitor gets an isolated key space
func Namespaced(storage Storage, namespace string) Storage {
	return &namespacedStorage{inner: storage, namespace: namespace}
}

func (s *namespacedStorage) key(key string) string {
	return s.namespace + ":" + key
}

func (s *namespacedStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.key(key))
}

func (s *namespacedStorage) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.key(key), value)
}

func (s *namespacedStorage) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.key(key))
}
