package config

import "time"

// CacheConfig controls the read-path response cache. Only the layout
// and booking GET endpoints are cached; mutations are cheap enough to
// hit the database directly and entries expire by TTL rather than
// being invalidated.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads CACHE_* environment variables with defaults
// suitable for a single office: a short TTL keeps a just-saved layout
// from appearing stale for long.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 15*time.Second),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}
