package config

import (
	"fmt"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for the rendered artifacts. The underlying dataset is
	// immutable for the process lifetime, so entries never need to expire;
	// they exist to keep re-renders of an already selected metric
	// byte-identical and cheap.
	ChoroplethCache *cache.Cache
	ChartCache      *cache.Cache
	SuggestCache    *cache.Cache
)

func InitCache() {
	ChoroplethCache = cache.New(cache.NoExpiration, 0)
	ChartCache = cache.New(cache.NoExpiration, 0)
	SuggestCache = cache.New(cache.NoExpiration, 0)
}

// ClearAllCaches is the explicit invalidation hook; nothing calls it outside
// of a restart path today.
func ClearAllCaches() {
	ChoroplethCache.Flush()
	ChartCache.Flush()
	SuggestCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
