package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/config"
)

// HomeHandler serves the unauthenticated informational endpoints.
type HomeHandler struct {
    Cfg config.Config
}

// Index handles GET / and lists the available endpoints.
func (h *HomeHandler) Index(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "message": "Welcome to the Casting Agency API",
        "available_endpoints": "GET /actors, GET /movies, POST /actors, " +
            "POST /movies, POST /movies/cast, DELETE /actors/:id, " +
            "DELETE /movies/:id, DELETE /movies/cast, " +
            "PATCH /actors/:id, PATCH /movies/:id",
        "note":    "Make sure you have permission to access these endpoints",
        "success": true,
    })
}

// AuthorizeURL handles GET /authorization and returns the external
// issuer's authorize URL so clients can obtain a token without knowing
// the issuer configuration themselves.
func (h *HomeHandler) AuthorizeURL(c echo.Context) error {
    issuer := strings.TrimSuffix(h.Cfg.AuthIssuerURL, "/")
    url := issuer + "/authorize" +
        "?audience=" + h.Cfg.AuthAudience +
        "&response_type=token" +
        "&client_id=" + h.Cfg.AuthClientID +
        "&redirect_uri=" + h.Cfg.AuthCallbackURL
    return c.JSON(http.StatusOK, echo.Map{
        "url": url,
    })
}
