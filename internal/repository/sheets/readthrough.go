package sheets

import (
	"context"

	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
)

// readThrough serves a collection's rows from the cache when fresh,
// otherwise fetches from the store and populates the cache before
// returning. A fetch failure is surfaced, never masked with stale data.
func readThrough(ctx context.Context, store Store, cache *sheetcache.Cache, name string) ([]Row, error) {
	if rows, ok := cache.Get(name); ok {
		return rows, nil
	}
	rows, err := store.ReadAll(ctx, name)
	if err != nil {
		return nil, err
	}
	cache.Set(name, rows)
	return rows, nil
}
