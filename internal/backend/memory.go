package backend

import (
	"context"
	"sync"
)

// MemoryBackend is an in-memory Backend used in tests. Failures can be
// injected per key to exercise error paths.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string

	// FailSet, FailGet and FailRemove return an error for a key when the
	// function is non-nil and returns non-nil.
	FailGet    func(key string) error
	FailSet    func(key string) error
	FailRemove func(key string) error

	// SetCalls counts Set invocations per key.
	SetCalls map[string]int
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values:   make(map[string]string),
		SetCalls: make(map[string]int),
	}
}

// Get returns the value stored under key, with false when the key is absent.
func (b *MemoryBackend) Get(ctx context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.FailGet != nil {
		if err := b.FailGet(key); err != nil {
			return "", false, err
		}
	}
	v, ok := b.values[key]
	return v, ok, nil
}

// Set writes value under key.
func (b *MemoryBackend) Set(ctx context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.SetCalls[key]++
	if b.FailSet != nil {
		if err := b.FailSet(key); err != nil {
			return err
		}
	}
	b.values[key] = value
	return nil
}

// Remove deletes key.
func (b *MemoryBackend) Remove(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailRemove != nil {
		if err := b.FailRemove(key); err != nil {
			return err
		}
	}
	delete(b.values, key)
	return nil
}

// RemoveMany deletes all keys, stopping at the first injected failure.
func (b *MemoryBackend) RemoveMany(ctx context.Context, keys []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, key := range keys {
		if b.FailRemove != nil {
			if err := b.FailRemove(key); err != nil {
				return err
			}
		}
	}
	for _, key := range keys {
		delete(b.values, key)
	}
	return nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}

// Len reports the number of stored keys. Used in tests.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.values)
}
