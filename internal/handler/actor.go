package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/model"
    "github.com/iliyamo/casting-agency/internal/queue"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/service"
)

// ActorHandler serves the four actor operations.
type ActorHandler struct {
    Actors *repository.ActorRepo
    Events *service.Publisher
}

// actorItem is one element of the GET /actors response.
type actorItem struct {
    ID     uint64       `json:"id"`
    Name   string       `json:"name"`
    Age    int          `json:"age"`
    Gender model.Gender `json:"gender"`
    Movies []string     `json:"movies"`
}

// List handles GET /actors. Actors are ordered by id ascending; an
// actor cast in no movies carries an empty movies array.
func (h *ActorHandler) List(c echo.Context) error {
    items, err := h.Actors.ListWithMovies(c.Request().Context())
    if err != nil {
        return storeError(c, err)
    }
    actors := make([]actorItem, 0, len(items))
    for _, it := range items {
        actors = append(actors, actorItem{
            ID:     it.ID,
            Name:   it.Name,
            Age:    it.Age,
            Gender: it.Gender,
            Movies: it.Movies,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{
        "actors":  actors,
        "success": true,
    })
}

// Create handles POST /actors. All three fields are required; a missing
// field or a gender outside the enumerated set is a 422. The response
// echoes the stored fields.
func (h *ActorHandler) Create(c echo.Context) error {
    var body struct {
        Name   *string `json:"name"`
        Age    *int    `json:"age"`
        Gender *string `json:"gender"`
    }
    if err := c.Bind(&body); err != nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    if body.Name == nil || body.Age == nil || body.Gender == nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    actor := &model.Actor{
        Name:   *body.Name,
        Age:    *body.Age,
        Gender: model.Gender(*body.Gender),
    }
    if err := h.Actors.Create(c.Request().Context(), actor); err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionActorCreated, 0, actor.ID)
    return c.JSON(http.StatusOK, echo.Map{
        "name":    actor.Name,
        "age":     actor.Age,
        "gender":  actor.Gender,
        "success": true,
    })
}

// Update handles PATCH /actors/:id. Only the fields present in the body
// are applied; a body with no recognized fields succeeds and returns
// the actor unchanged. The response carries the post-update values.
func (h *ActorHandler) Update(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return fail(c, http.StatusNotFound, msgNotFound)
    }
    var body struct {
        Name   *string `json:"name"`
        Age    *int    `json:"age"`
        Gender *string `json:"gender"`
    }
    if err := c.Bind(&body); err != nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    upd := repository.ActorUpdate{Name: body.Name, Age: body.Age}
    if body.Gender != nil {
        g := model.Gender(*body.Gender)
        upd.Gender = &g
    }
    actor, err := h.Actors.Update(c.Request().Context(), id, upd)
    if err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionActorUpdated, 0, actor.ID)
    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "name":    actor.Name,
        "age":     actor.Age,
        "gender":  actor.Gender,
    })
}

// Delete handles DELETE /actors/:id. The actor's relations are removed
// together with the actor in one transactional unit.
func (h *ActorHandler) Delete(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return fail(c, http.StatusNotFound, msgNotFound)
    }
    if err := h.Actors.Delete(c.Request().Context(), id); err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionActorDeleted, 0, id)
    return c.JSON(http.StatusOK, echo.Map{
        "success":  true,
        "actor_id": id,
    })
}
