// Package middleware contains reusable HTTP middleware: bearer token
// authentication, per-operation permission checks, the list-response
// cache and the token-bucket rate limiter.
package middleware

import (
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/auth"
)

// claimsKey is the echo context key under which Authenticate stores the
// verified claims for downstream middleware and handlers.
const claimsKey = "claims"

// ClaimsFrom returns the verified claims stored in the context, or nil
// when the request did not pass authentication.
func ClaimsFrom(c echo.Context) *auth.Claims {
    claims, _ := c.Get(claimsKey).(*auth.Claims)
    return claims
}

// denyJSON writes the API's structured error body for an auth failure.
func denyJSON(c echo.Context, e *auth.AuthError) error {
    status := e.StatusCode()
    return c.JSON(status, echo.Map{
        "success":    false,
        "message":    e.Message,
        "error_code": status,
    })
}

// Authenticate returns middleware that validates the Bearer token with
// the given verifier and injects the resulting claims into the request
// context. A missing header and a token that fails verification are
// reported as distinct 401 messages; neither reaches a handler.
func Authenticate(v auth.Verifier) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            header := c.Request().Header.Get(echo.HeaderAuthorization)
            if !strings.HasPrefix(header, "Bearer ") {
                return denyJSON(c, &auth.AuthError{
                    Reason:  auth.DenyMissingCredential,
                    Message: "authorization header with bearer token expected",
                })
            }
            raw := strings.TrimPrefix(header, "Bearer ")
            claims, err := v.Verify(c.Request().Context(), raw)
            if err != nil {
                return denyJSON(c, &auth.AuthError{
                    Reason:  auth.DenyInvalidCredential,
                    Message: "token verification failed",
                })
            }
            c.Set(claimsKey, claims)
            return next(c)
        }
    }
}

// RequirePermission returns middleware enforcing that the authenticated
// caller holds the given permission. It assumes Authenticate ran
// earlier in the chain; without claims the request is denied as
// unauthenticated. The handler is never invoked on denial, so a denied
// request performs no store access.
func RequirePermission(permission string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if authErr := auth.Authorize(permission, ClaimsFrom(c)); authErr != nil {
                return denyJSON(c, authErr)
            }
            return next(c)
        }
    }
}
