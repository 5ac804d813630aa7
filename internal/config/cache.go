package config

import "time"

// CacheConfig tunes the Redis response cache in front of the catalog.
// Only GET routes under PathPrefix are cached; MaxBodyBytes caps the
// size of a cacheable reply so an oversized response is served but
// never stored.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	PathPrefix   string
	MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* variables. The short default TTL keeps
// stale catalog entries from outliving a product update for long.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDuration("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "catalog"),
		PathPrefix:   envStr("CACHE_PATH_PREFIX", "/v1/products"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
