package cachemanager

import (
	"context"
	"time"

	"github.com/zjrosen/modelstore/internal/log"
	"github.com/zjrosen/modelstore/internal/registry"
)

// CachingProvider is a read-through decorator around an ObjectProvider.
// Resolved objects are kept for the configured TTL; misses and source errors
// are never cached. It composes with the multiplexer like any other provider,
// which makes it the natural front for slow upstream registries.
//
// Note the cache holds object references, not copies: invalidation is only
// needed when the source forgets an identifier, not when an object mutates.
type CachingProvider struct {
	source    registry.ObjectProvider
	cache     CacheManager[string, registry.Identifiable]
	ttl       time.Duration
	skipCache bool
}

// Compile-time check that the decorator stays an ObjectProvider.
var _ registry.ObjectProvider = (*CachingProvider)(nil)

// NewCachingProvider wraps source with a read-through cache.
// When skipCache is true every lookup goes straight to the source, so the
// decorator can stay wired while caching is disabled by configuration.
func NewCachingProvider(
	source registry.ObjectProvider,
	cache CacheManager[string, registry.Identifiable],
	ttl time.Duration,
	skipCache bool,
) *CachingProvider {
	return &CachingProvider{
		source:    source,
		cache:     cache,
		ttl:       ttl,
		skipCache: skipCache,
	}
}

// GetIdentifiable resolves the identifier, serving from cache when possible.
func (p *CachingProvider) GetIdentifiable(identifier string) (registry.Identifiable, error) {
	if p.skipCache {
		return p.source.GetIdentifiable(identifier)
	}

	ctx := context.Background()
	if obj, ok := p.cache.Get(ctx, identifier); ok {
		return obj, nil
	}

	obj, err := p.source.GetIdentifiable(identifier)
	if err != nil {
		return nil, err
	}

	log.Debug(log.CatCache, "caching resolved identifiable", "id", identifier, "ttl", p.ttl)
	p.cache.Set(ctx, identifier, obj, p.ttl)

	return obj, nil
}

// Invalidate drops the given identifiers from the cache.
func (p *CachingProvider) Invalidate(identifiers ...string) error {
	return p.cache.Delete(context.Background(), identifiers...)
}

// Flush clears every cached entry.
func (p *CachingProvider) Flush() error {
	return p.cache.Flush(context.Background())
}
