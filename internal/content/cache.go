package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/store"
)

// GenerateFunc produces a raw payload from the external generator.
type GenerateFunc func(ctx context.Context) (json.RawMessage, error)

// ValidateFunc checks a generated payload and returns the usable subset.
// It must error when nothing usable remains.
type ValidateFunc func(raw json.RawMessage) (json.RawMessage, error)

// Cache memoizes generated content with expiry. Per key the flow is
// miss → generate → validate → store-with-TTL; any failure yields the
// fallback and leaves the cache unset so the next request regenerates.
type Cache struct {
	repo    *store.CacheRepo
	clock   clock.Clock
	timeout time.Duration
}

// NewCache creates a Cache. timeout bounds each generator call.
func NewCache(repo *store.CacheRepo, clk clock.Clock, timeout time.Duration) *Cache {
	return &Cache{repo: repo, clock: clk, timeout: timeout}
}

// GetOrGenerate returns the cached value for key if fresh, otherwise runs
// generate and validate, caches the result for ttl, and returns it. On any
// generation or validation failure it returns fallback without touching the
// cache. Two concurrent misses may both generate; the key upsert makes the
// race benign.
func (c *Cache) GetOrGenerate(ctx context.Context, key string, generate GenerateFunc, validate ValidateFunc, fallback json.RawMessage, ttl time.Duration) json.RawMessage {
	now := c.clock.Now()

	entry, err := c.repo.Get(ctx, key)
	if err == nil && entry.ExpiresAt.After(now) {
		return entry.Value
	}
	if err != nil && err != store.ErrNotFound {
		// A broken cache read is a miss, not a failure.
		fmt.Fprintf(os.Stderr, "warning: cache read for %q: %v\n", key, err)
	}

	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := generate(genCtx)
	if err != nil {
		return fallback
	}

	value, err := validate(raw)
	if err != nil {
		return fallback
	}

	putErr := c.repo.Put(ctx, store.CacheEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: now.Add(ttl),
	})
	if putErr != nil {
		fmt.Fprintf(os.Stderr, "warning: cache write for %q: %v\n", key, putErr)
	}

	return value
}
