package cache

import (
	"context"
	"time"
)

// Store is a byte-level cache with per-key expiry. Both backends
// implement the same contract the catalog snapshots rely on: a value is
// served until its TTL passes, then the key reads as absent. Nothing
// invalidates a key on write paths; staleness up to one TTL window is
// accepted.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}
