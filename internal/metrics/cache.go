package metrics

import (
	"context"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/core"
)

// Cache keys for gauge queries
const (
	cacheKeyMappingsTotal    = "gauge:mappings_total"
	cacheKeyMappingsExpiring = "gauge:mappings_expiring"
)

// GaugeCacheWrapper caches the COUNT queries behind the periodic gauge
// updates so multiple instances do not all hit the store on every tick.
// The cache TTL should match the update interval.
type GaugeCacheWrapper struct {
	store core.MappingCounter
	cache core.Cache[int64]
}

// NewGaugeCacheWrapper creates a cache wrapper around the store's counters.
func NewGaugeCacheWrapper(store core.MappingCounter, cache core.Cache[int64]) *GaugeCacheWrapper {
	return &GaugeCacheWrapper{store: store, cache: cache}
}

// MappingsCount returns the total mapping count, served from cache when fresh.
func (w *GaugeCacheWrapper) MappingsCount(ctx context.Context, ttl time.Duration) (int64, error) {
	return core.GetWithFetch(ctx, w.cache, cacheKeyMappingsTotal, ttl,
		func(ctx context.Context, _ string) (int64, error) {
			return w.store.CountMappings(ctx)
		})
}

// ExpiringMappingsCount returns the count of mappings expiring within the
// window, served from cache when fresh.
func (w *GaugeCacheWrapper) ExpiringMappingsCount(
	ctx context.Context,
	within time.Duration,
	ttl time.Duration,
) (int64, error) {
	return core.GetWithFetch(ctx, w.cache, cacheKeyMappingsExpiring, ttl,
		func(ctx context.Context, _ string) (int64, error) {
			return w.store.CountExpiringMappings(ctx, within)
		})
}
