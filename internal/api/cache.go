package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Cache stores marshaled optimization responses keyed by a request digest.
// Identical inputs produce identical results (fixed search seed), so a cached
// response is always valid until its TTL expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// cacheKey digests the raw request body; the body is canonical enough since
// clients resubmit the same document for the same vessel profile.
func cacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "cii:" + hex.EncodeToString(sum[:])
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, entries: map[string]memoryEntry{}}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{value: value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}
