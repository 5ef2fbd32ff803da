package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/queue"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/service"
)

// CastHandler serves the link and unlink operations on the cast
// relation.
type CastHandler struct {
    Relations *repository.RelationRepo
    Events    *service.Publisher
}

// Link handles POST /movies/cast. Both ids are required in the body; a
// missing or malformed id is a 422, a missing parent is a 404 and an
// already linked pair is a 409.
func (h *CastHandler) Link(c echo.Context) error {
    var body struct {
        MovieID *uint64 `json:"movie_id"`
        ActorID *uint64 `json:"actor_id"`
    }
    if err := c.Bind(&body); err != nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    if body.MovieID == nil || body.ActorID == nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    rel, err := h.Relations.Link(c.Request().Context(), *body.MovieID, *body.ActorID)
    if err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionRelationLinked, rel.MovieID, rel.ActorID)
    return c.JSON(http.StatusOK, echo.Map{
        "movie_id": rel.MovieID,
        "actor_id": rel.ActorID,
        "success":  true,
    })
}

// Unlink handles DELETE /movies/cast?actorid=&movieid=. A missing or
// unparsable query parameter is reported the same way as a pair that
// was never linked: 404.
func (h *CastHandler) Unlink(c echo.Context) error {
    actorID, errA := strconv.ParseUint(c.QueryParam("actorid"), 10, 64)
    movieID, errM := strconv.ParseUint(c.QueryParam("movieid"), 10, 64)
    if errA != nil || errM != nil {
        return fail(c, http.StatusNotFound, msgNotFound)
    }
    if err := h.Relations.Unlink(c.Request().Context(), actorID, movieID); err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionRelationUnlinked, movieID, actorID)
    return c.JSON(http.StatusOK, echo.Map{
        "success":  true,
        "actor_id": actorID,
        "movie_id": movieID,
    })
}
