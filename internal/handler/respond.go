// Package handler maps HTTP requests onto repository operations and
// repository results onto the API's wire format. Every success body
// carries "success": true; every failure is a structured JSON body with
// "success": false, a message and the error code. Internal store errors
// are never leaked raw.
package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/repository"
)

// Canonical error messages, one per taxonomy kind.
const (
    msgNotFound      = "Resource not found"
    msgUnprocessable = "Request unprocessable"
    msgConflict      = "Resource conflict"
)

// fail writes the structured error body for the given status.
func fail(c echo.Context, status int, message string) error {
    return c.JSON(status, echo.Map{
        "success":    false,
        "message":    message,
        "error_code": status,
    })
}

// storeError translates a repository failure into the API's error
// taxonomy. Unknown failures map to 422 rather than surfacing internals.
func storeError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, repository.ErrActorNotFound),
        errors.Is(err, repository.ErrMovieNotFound),
        errors.Is(err, repository.ErrRelationNotFound):
        return fail(c, http.StatusNotFound, msgNotFound)
    case errors.Is(err, repository.ErrRelationExists):
        return fail(c, http.StatusConflict, msgConflict)
    default:
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
}
