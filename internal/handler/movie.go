package handler

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/model"
    "github.com/iliyamo/casting-agency/internal/queue"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/service"
)

// MovieHandler serves the four movie operations.
type MovieHandler struct {
    Movies *repository.MovieRepo
    Events *service.Publisher
}

// movieItem is one element of the GET /movies response.
type movieItem struct {
    ID          uint64   `json:"id"`
    Title       string   `json:"title"`
    ReleaseDate string   `json:"release_date"`
    Actors      []string `json:"actors"`
}

// parseReleaseDate accepts the canonical YYYY-MM-DD form and the
// MM/DD/YYYY form older clients send.
func parseReleaseDate(s string) (time.Time, error) {
    if t, err := time.Parse(model.ReleaseDateLayout, s); err == nil {
        return t, nil
    }
    return time.Parse("01/02/2006", s)
}

// List handles GET /movies. Movies are ordered by id ascending; a movie
// with no cast carries an empty actors array.
func (h *MovieHandler) List(c echo.Context) error {
    items, err := h.Movies.ListWithActors(c.Request().Context())
    if err != nil {
        return storeError(c, err)
    }
    movies := make([]movieItem, 0, len(items))
    for _, it := range items {
        movies = append(movies, movieItem{
            ID:          it.ID,
            Title:       it.Title,
            ReleaseDate: it.ReleaseDate.Format(model.ReleaseDateLayout),
            Actors:      it.Actors,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{
        "movies":  movies,
        "success": true,
    })
}

// Create handles POST /movies. Both fields are required; a missing
// field or an unparsable release date is a 422. The response echoes the
// release date exactly as the client sent it.
func (h *MovieHandler) Create(c echo.Context) error {
    var body struct {
        Title       *string `json:"title"`
        ReleaseDate *string `json:"release_date"`
    }
    if err := c.Bind(&body); err != nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    if body.Title == nil || body.ReleaseDate == nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    released, err := parseReleaseDate(*body.ReleaseDate)
    if err != nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    movie := &model.Movie{Title: *body.Title, ReleaseDate: released}
    if err := h.Movies.Create(c.Request().Context(), movie); err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionMovieCreated, movie.ID, 0)
    return c.JSON(http.StatusOK, echo.Map{
        "title":        movie.Title,
        "release_date": *body.ReleaseDate,
        "success":      true,
    })
}

// Update handles PATCH /movies/:id. Only the fields present in the body
// are applied; a body with no recognized fields succeeds and returns
// the movie unchanged. The response carries the post-update values with
// the release date in canonical YYYY-MM-DD form.
func (h *MovieHandler) Update(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return fail(c, http.StatusNotFound, msgNotFound)
    }
    var body struct {
        Title       *string `json:"title"`
        ReleaseDate *string `json:"release_date"`
    }
    if err := c.Bind(&body); err != nil {
        return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
    }
    upd := repository.MovieUpdate{Title: body.Title}
    if body.ReleaseDate != nil {
        released, err := parseReleaseDate(*body.ReleaseDate)
        if err != nil {
            return fail(c, http.StatusUnprocessableEntity, msgUnprocessable)
        }
        upd.ReleaseDate = &released
    }
    movie, err := h.Movies.Update(c.Request().Context(), id, upd)
    if err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionMovieUpdated, movie.ID, 0)
    return c.JSON(http.StatusOK, echo.Map{
        "success":      true,
        "title":        movie.Title,
        "release_date": movie.ReleaseDate.Format(model.ReleaseDateLayout),
    })
}

// Delete handles DELETE /movies/:id. The movie's relations are removed
// together with the movie in one transactional unit.
func (h *MovieHandler) Delete(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return fail(c, http.StatusNotFound, msgNotFound)
    }
    if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
        return storeError(c, err)
    }
    h.Events.Emit(queue.ActionMovieDeleted, id, 0)
    return c.JSON(http.StatusOK, echo.Map{
        "success":  true,
        "movie_id": id,
    })
}
