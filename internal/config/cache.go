package config

import (
    "os"
    "time"
)

// CacheConfig controls the list-response cache. Only the two list
// endpoints (GET /actors, GET /movies) are cached; entries are
// invalidated by mutating operations and additionally expire after TTL
// as a safety net.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads CACHE_* environment variables, applying
// defaults when unset.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: getenv("CACHE_ENABLED", "true") == "true",
        TTL:     parseDur(getenv("CACHE_TTL", "30s")),
        Prefix:  getenv("CACHE_PREFIX", "cache"),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
