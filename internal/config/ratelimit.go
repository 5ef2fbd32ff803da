package config

import (
    "strconv"
    "time"
)

// RateLimitConfig tunes the Redis token bucket applied to every route.
// Requests are keyed per client (token subject when authenticated,
// client IP otherwise) and per route.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int           // bucket size, i.e. allowed burst
    RefillTokens   int           // tokens restored per interval
    RefillInterval time.Duration // how often tokens are restored
    TTL            time.Duration // how long idle buckets live in Redis
    Prefix         string        // key namespace
}

// LoadRateLimitConfig reads RATE_LIMIT_* environment variables and
// clamps nonsensical values to safe minimums.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
        Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
        RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1s")),
        TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
        Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
    }
    if cfg.Capacity < 1 {
        cfg.Capacity = 1
    }
    if cfg.RefillTokens < 1 {
        cfg.RefillTokens = 1
    }
    if cfg.RefillInterval <= 0 {
        cfg.RefillInterval = time.Second
    }
    // Keep bucket state around for at least a few refill cycles so a
    // briefly idle client is not treated as brand new.
    if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
        cfg.TTL = minTTL
    }
    return cfg
}

func envInt(key string, def int) int {
    s := getenv(key, "")
    if s == "" {
        return def
    }
    if n, err := strconv.Atoi(s); err == nil {
        return n
    }
    return def
}
