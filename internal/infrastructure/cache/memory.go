package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a simple in-memory key-value store with expiration.
// It is the default session cache backend for single-process deployments.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
}

type memoryItem struct {
	value      string
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Set stores a key-value pair with expiration
func (ms *MemoryStore) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = &memoryItem{
		value:      value,
		expireTime: time.Now().Add(expiration),
	}
	return nil
}

// Get retrieves a value by key; found is false when absent or expired
func (ms *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists {
		return "", false, nil
	}

	if time.Now().After(item.expireTime) {
		return "", false, nil
	}

	return item.value, true, nil
}

// Delete removes a key
func (ms *MemoryStore) Delete(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
