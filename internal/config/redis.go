package config

// Redis backs the response cache and the rate limiter. Both features
// are optional: when no Redis server is reachable at startup the
// middleware degrades to pass-through, so the constructor returns nil
// instead of an error on connection failure.

import (
    "context"
    "os"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from REDIS_ADDR,
// REDIS_PASSWORD and REDIS_DB. It pings the server with a short
// timeout and returns nil when the server cannot be reached; callers
// must treat a nil client as "caching and rate limiting disabled".
func NewRedisClient() *redis.Client {
    addr := os.Getenv("REDIS_ADDR")
    if addr == "" {
        addr = "localhost:6379"
    }
    dbNum := 0
    if s := os.Getenv("REDIS_DB"); s != "" {
        if n, err := strconv.Atoi(s); err == nil {
            dbNum = n
        }
    }
    client := redis.NewClient(&redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       dbNum,
    })
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
