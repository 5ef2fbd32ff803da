package main

import (
    "context"
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"

    "github.com/iliyamo/casting-agency/internal/auth"
    "github.com/iliyamo/casting-agency/internal/config"
    "github.com/iliyamo/casting-agency/internal/database"
    "github.com/iliyamo/casting-agency/internal/handler"
    mw "github.com/iliyamo/casting-agency/internal/middleware"
    "github.com/iliyamo/casting-agency/internal/queue"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/router"
    "github.com/iliyamo/casting-agency/internal/service"
)

func main() {
    _ = godotenv.Load() // .env is optional; real env vars take precedence
    cfg := config.Load()
    ctx := context.Background()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    if err := database.EnsureSchema(ctx, db); err != nil {
        log.Fatalf("schema: %v", err)
    }

    // HS256 with a shared secret in development, the external issuer's
    // key set everywhere else.
    var verifier auth.Verifier
    if cfg.JWTSecret != "" {
        verifier = auth.NewHMACVerifier(cfg.JWTSecret)
    } else {
        v, err := auth.NewOIDCVerifier(ctx, cfg.AuthIssuerURL, cfg.AuthAudience)
        if err != nil {
            log.Fatalf("verifier: %v", err)
        }
        verifier = v
    }

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Print("redis unavailable; response cache and rate limiting disabled")
    }
    cache := mw.NewListCache(config.LoadCacheConfig(), rdb)
    rateLimit := mw.RateLimit(config.LoadRateLimitConfig(), rdb)

    events := service.NewPublisher()
    if events != nil {
        go func() {
            if err := queue.StartCastingConsumer(); err != nil {
                log.Printf("casting consumer stopped: %v", err)
            }
        }()
    }

    actors := repository.NewActorRepo(db)
    movies := repository.NewMovieRepo(db)
    relations := repository.NewRelationRepo(db)

    e := echo.New()
    e.HideBanner = true
    e.Use(echomw.Recover())
    e.Use(echomw.Logger())
    e.Use(echomw.CORS())

    router.RegisterRoutes(e, router.Deps{
        Verifier:  verifier,
        Actors:    &handler.ActorHandler{Actors: actors, Events: events},
        Movies:    &handler.MovieHandler{Movies: movies, Events: events},
        Cast:      &handler.CastHandler{Relations: relations, Events: events},
        Home:      &handler.HomeHandler{Cfg: cfg},
        Cache:     cache,
        RateLimit: rateLimit,
    })

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
