package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Do memoizes fetch through store under key for ttl. The cached value is
// JSON round-tripped, so T must marshal losslessly. A corrupted entry is
// treated as a miss and refetched; store failures never fail the fetch.
//
// A nil store disables caching and calls fetch directly.
func Do[T any](ctx context.Context, store Store, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if store == nil {
		return fetch(ctx)
	}

	if b, ok := store.Get(ctx, key); ok {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// corrupted entry: fall through and refetch
	}

	out, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if b, err := json.Marshal(out); err == nil {
		store.Set(ctx, key, b, ttl)
	}
	return out, nil
}
