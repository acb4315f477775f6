package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis, used when a Redis endpoint is
// configured so cached values survive process restarts within their TTLs.
type RedisStore struct {
	rdb       *redis.Client
	namespace string
}

// RedisStore implements Store.
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. If namespace is empty, it uses
// "alphadesk".
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "alphadesk"
	}
	return &RedisStore{rdb: rdb, namespace: namespace}
}

// Get returns the cached bytes for key. Backend failures are misses.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.rdb.Get(ctx, r.prefixed(key)).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	return b, true
}

// Set stores value under key for ttl, best effort.
func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	_ = r.rdb.Set(ctx, r.prefixed(key), value, ttl).Err()
}

// Clear deletes every key in this store's namespace using SCAN, so other
// users of the same Redis are untouched.
func (r *RedisStore) Clear(ctx context.Context) error {
	pattern := r.namespace + ":*"
	var cursor uint64
	for {
		keys, cur, err := r.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

func (r *RedisStore) prefixed(key string) string {
	return r.namespace + ":" + safe(key)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
