package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	val       []byte
	expiresAt time.Time
}

// MemoryStore is the process-wide default backend. The mutex only keeps
// the map memory safe; racing misses may both load and both write, last
// write wins.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock exists for deterministic expiry in tests.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (ms *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.entries[key]
	if !ok {
		return nil, false, nil
	}
	if ms.now().After(entry.expiresAt) {
		delete(ms.entries, key)
		return nil, false, nil
	}
	return entry.val, true, nil
}

func (ms *MemoryStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.entries[key] = memoryEntry{
		val:       val,
		expiresAt: ms.now().Add(ttl),
	}
	return nil
}
