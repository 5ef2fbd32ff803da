// Package router wires HTTP routes to handlers. The protected API is
// declared as a table mapping each operation onto its required
// permission; a single authorization wrapper consults the table entry,
// so no per-route permission logic is duplicated in handlers.
package router

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/auth"
    "github.com/iliyamo/casting-agency/internal/handler"
    "github.com/iliyamo/casting-agency/internal/middleware"
)

// Deps carries everything RegisterRoutes needs. RateLimit and Cache may
// be nil when Redis is not configured.
type Deps struct {
    Verifier  auth.Verifier
    Actors    *handler.ActorHandler
    Movies    *handler.MovieHandler
    Cast      *handler.CastHandler
    Home      *handler.HomeHandler
    Cache     *middleware.ListCache
    RateLimit echo.MiddlewareFunc
}

// apiRoute is one row of the operation table: where the operation
// lives, which permission it demands and whether it mutates the
// catalog (mutating routes invalidate the list cache, read routes are
// served from it).
type apiRoute struct {
    method     string
    path       string
    permission string
    handler    echo.HandlerFunc
    mutating   bool
}

// RegisterRoutes registers the public endpoints and the permission
// guarded API on the provided Echo instance.
func RegisterRoutes(e *echo.Echo, d Deps) {
    public := []echo.MiddlewareFunc{}
    if d.RateLimit != nil {
        public = append(public, d.RateLimit)
    }
    e.GET("/healthz", handler.Health, public...)
    e.GET("/", d.Home.Index, public...)
    e.GET("/authorization", d.Home.AuthorizeURL, public...)

    table := []apiRoute{
        {http.MethodGet, "/actors", auth.PermGetActors, d.Actors.List, false},
        {http.MethodGet, "/movies", auth.PermGetMovies, d.Movies.List, false},
        {http.MethodPost, "/actors", auth.PermPostActors, d.Actors.Create, true},
        {http.MethodPost, "/movies", auth.PermPostMovies, d.Movies.Create, true},
        {http.MethodPost, "/movies/cast", auth.PermPostActorToMovie, d.Cast.Link, true},
        {http.MethodDelete, "/movies/cast", auth.PermDeleteActorFromMovie, d.Cast.Unlink, true},
        {http.MethodDelete, "/actors/:id", auth.PermDeleteActor, d.Actors.Delete, true},
        {http.MethodDelete, "/movies/:id", auth.PermDeleteMovie, d.Movies.Delete, true},
        {http.MethodPatch, "/actors/:id", auth.PermPatchActor, d.Actors.Update, true},
        {http.MethodPatch, "/movies/:id", auth.PermPatchMovie, d.Movies.Update, true},
    }

    // Authentication runs first, then the rate limiter (so buckets are
    // keyed by token subject), then the per-route permission check.
    group := e.Group("", middleware.Authenticate(d.Verifier))
    if d.RateLimit != nil {
        group.Use(d.RateLimit)
    }
    for _, rt := range table {
        mws := []echo.MiddlewareFunc{middleware.RequirePermission(rt.permission)}
        if d.Cache != nil {
            if rt.mutating {
                mws = append(mws, d.Cache.Invalidate())
            } else {
                mws = append(mws, d.Cache.Middleware())
            }
        }
        group.Add(rt.method, rt.path, rt.handler, mws...)
    }
}
