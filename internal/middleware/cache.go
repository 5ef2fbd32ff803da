package middleware

import (
    "bytes"
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/casting-agency/internal/config"
)

// ListCache caches the JSON bodies of the two list endpoints in Redis.
// Entries are deleted whenever a mutating operation succeeds and expire
// after the configured TTL as a safety net, so a cached list can only
// ever be TTL-stale if the invalidation write itself was lost.
type ListCache struct {
    cfg config.CacheConfig
    rdb *redis.Client
}

// NewListCache builds the cache. A nil Redis client disables it; both
// middleware constructors then return pass-throughs.
func NewListCache(cfg config.CacheConfig, rdb *redis.Client) *ListCache {
    return &ListCache{cfg: cfg, rdb: rdb}
}

func (lc *ListCache) disabled() bool {
    return lc == nil || !lc.cfg.Enabled || lc.rdb == nil
}

func (lc *ListCache) key(path string) string {
    return lc.cfg.Prefix + ":" + path
}

// bodyCapture duplicates the response body into a buffer while
// forwarding it to the client unchanged.
type bodyCapture struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
}

func (w *bodyCapture) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
    w.buf.Write(b)
    return w.ResponseWriter.Write(b)
}

// Middleware serves GET responses from Redis when a cached body exists
// and stores fresh 200 responses after the handler runs. Only the body
// is cached; every response here is JSON, so headers need no replay.
func (lc *ListCache) Middleware() echo.MiddlewareFunc {
    if lc.disabled() {
        return passThrough
    }
    ttl := lc.cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }
            ctx := c.Request().Context()
            key := lc.key(c.Path())

            if body, err := lc.rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
                c.Response().Header().Set("X-Cache", "HIT")
                return c.JSONBlob(http.StatusOK, body)
            }

            cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }
            if cw.status == http.StatusOK {
                // Detached context: the client response is already on
                // its way, a cancelled request must not lose the entry.
                _ = lc.rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
            }
            return nil
        }
    }
}

// Invalidate returns middleware for mutating routes. After the handler
// succeeds, both list entries are dropped so the next GET rebuilds them
// from the database.
func (lc *ListCache) Invalidate() echo.MiddlewareFunc {
    if lc.disabled() {
        return passThrough
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if err := next(c); err != nil {
                return err
            }
            if c.Response().Status < http.StatusBadRequest {
                _ = lc.rdb.Del(context.Background(), lc.key("/actors"), lc.key("/movies")).Err()
            }
            return nil
        }
    }
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc {
    return func(c echo.Context) error { return next(c) }
}
