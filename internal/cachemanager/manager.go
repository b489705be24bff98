// Package cachemanager provides a TTL cache layer for provider lookups.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a generic TTL cache over comparable keys.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
