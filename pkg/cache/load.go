package cache

import (
	"context"

	"github.com/matzehuels/triangulator/pkg/observability"
)

// GetOrLoad returns the value under key, calling load and storing its result
// on a miss. Cache read and write failures are not fatal: the value is loaded
// and returned regardless. keyType labels the hook events. The boolean
// reports a cache hit.
func GetOrLoad(ctx context.Context, c Cache, keyType, key string, load func() ([]byte, error)) ([]byte, bool, error) {
	hooks := observability.Cache()
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		hooks.OnCacheHit(ctx, keyType)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, keyType)

	data, err := load()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, 0); err == nil {
		hooks.OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}
