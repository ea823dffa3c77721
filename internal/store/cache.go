package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// CacheEntry is one generated-content cache row.
type CacheEntry struct {
	Key       string
	Value     json.RawMessage
	ExpiresAt time.Time
}

// CacheRepo persists generated content keyed by a content-type string.
// Entries are overwritten on refresh.
type CacheRepo struct {
	db *sqlx.DB
}

// Get returns the entry for key, or ErrNotFound. Expiry is not checked here;
// callers decide whether a stale entry is usable.
func (r *CacheRepo) Get(ctx context.Context, key string) (CacheEntry, error) {
	var row struct {
		Key       string `db:"cache_key"`
		Value     string `db:"value"`
		ExpiresAt int64  `db:"expires_at"`
	}
	err := r.db.GetContext(ctx, &row,
		`SELECT cache_key, value, expires_at FROM generated_cache WHERE cache_key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return CacheEntry{}, ErrNotFound
	}
	if err != nil {
		return CacheEntry{}, fmt.Errorf("get cache entry: %w", err)
	}
	return CacheEntry{
		Key:       row.Key,
		Value:     json.RawMessage(row.Value),
		ExpiresAt: time.Unix(row.ExpiresAt, 0).UTC(),
	}, nil
}

// Put upserts the entry for key. Concurrent writers race benignly: the key
// is unique and the last write wins.
func (r *CacheRepo) Put(ctx context.Context, entry CacheEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generated_cache (cache_key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (cache_key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		entry.Key, string(entry.Value), entry.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}
