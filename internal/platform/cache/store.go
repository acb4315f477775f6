// Package cache provides the TTL-bounded memoization layer shared by the
// data fetchers, with a process-wide clear used by the manual refresh control.
package cache

import (
	"context"
	"time"
)

// TTL constants per data type. These bound how long a fetched value is
// served before the next render hits the upstream again.
const (
	// TTLWeather bounds the intraday forecast (upstream updates hourly).
	TTLWeather = 30 * time.Minute
	// TTLQuote bounds daily OHLC history per symbol.
	TTLQuote = 30 * time.Minute
	// TTLNews bounds headline lists per ticker.
	TTLNews = 30 * time.Minute
	// TTLInsight bounds generated explanations. The cache key includes the
	// headline set, so a new news cycle invalidates within this window.
	TTLInsight = time.Hour
)

// Store abstracts the cache backend. Implementations are best-effort:
// a failing backend must degrade to cache misses, never to errors.
//
// There is no per-key invalidation; Clear purges every entry the store
// owns regardless of individual TTLs.
type Store interface {
	// Get returns the cached bytes for key, or false on a miss
	// (absent, expired, or backend failure).
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Clear purges every entry owned by this store.
	Clear(ctx context.Context) error
}
