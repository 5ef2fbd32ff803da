package handler

import (
    "net/http"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/casting-agency/internal/repository"
)

const (
    qActorList      = `SELECT a.id, a.name, a.age, a.gender, m.title FROM actors a LEFT JOIN relations rel ON rel.actor_id = a.id LEFT JOIN movies m ON m.id = rel.movie_id ORDER BY a.id`
    qActorInsert    = `INSERT INTO actors (name, age, gender) VALUES (?, ?, ?)`
    qActorForUpdate = `SELECT id, name, age, gender FROM actors WHERE id = ? FOR UPDATE`
    qActorUpdate    = `UPDATE actors SET name = ?, age = ?, gender = ? WHERE id = ?`
    qActorDelete    = `DELETE FROM actors WHERE id = ?`
    qActorRelDelete = `DELETE FROM relations WHERE actor_id = ?`
)

func TestActorList(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectQuery(qActorList).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "gender", "title"}).
            AddRow(1, "Ana", 30, "female", "First Movie").
            AddRow(2, "Bo", 41, "male", nil))

    c, rec := newTestContext(t, http.MethodGet, "/actors", "")
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.List(c))

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{
        "actors": [
            {"id":1,"name":"Ana","age":30,"gender":"female","movies":["First Movie"]},
            {"id":2,"name":"Bo","age":41,"gender":"male","movies":[]}
        ],
        "success": true
    }`, rec.Body.String())
}

func TestActorCreate(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectExec(qActorInsert).
        WithArgs("Bill", 27, "female").
        WillReturnResult(sqlmock.NewResult(1, 1))

    c, rec := newTestContext(t, http.MethodPost, "/actors",
        `{"name":"Bill","age":27,"gender":"female"}`)
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Create(c))

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"name":"Bill","age":27,"gender":"female","success":true}`, rec.Body.String())
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActorCreateMissingField(t *testing.T) {
    db, mock := newMockDB(t)

    c, rec := newTestContext(t, http.MethodPost, "/actors", `{"name":"Bill","age":27}`)
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Create(c))

    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.JSONEq(t, `{"success":false,"message":"Request unprocessable","error_code":422}`, rec.Body.String())
    // No row may be created on a rejected request.
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActorCreateBadGender(t *testing.T) {
    db, mock := newMockDB(t)

    c, rec := newTestContext(t, http.MethodPost, "/actors",
        `{"name":"Bill","age":27,"gender":"unknown"}`)
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Create(c))

    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActorUpdateEmptyBodyReturnsUnchanged(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectQuery(qActorForUpdate).
        WithArgs(int64(5)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "gender"}).
            AddRow(5, "Ana", 30, "female"))
    mock.ExpectExec(qActorUpdate).
        WithArgs("Ana", 30, "female", int64(5)).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()

    c, rec := newTestContext(t, http.MethodPatch, "/actors/5", `{}`)
    c.SetPath("/actors/:id")
    c.SetParamNames("id")
    c.SetParamValues("5")
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Update(c))

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"success":true,"name":"Ana","age":30,"gender":"female"}`, rec.Body.String())
}

func TestActorUpdateNotFound(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectQuery(qActorForUpdate).
        WithArgs(int64(9)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "gender"}))
    mock.ExpectRollback()

    c, rec := newTestContext(t, http.MethodPatch, "/actors/9", `{"name":"X"}`)
    c.SetPath("/actors/:id")
    c.SetParamNames("id")
    c.SetParamValues("9")
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Update(c))

    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.JSONEq(t, `{"success":false,"message":"Resource not found","error_code":404}`, rec.Body.String())
}

func TestActorDelete(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectExec(qActorRelDelete).
        WithArgs(int64(7)).
        WillReturnResult(sqlmock.NewResult(0, 2))
    mock.ExpectExec(qActorDelete).
        WithArgs(int64(7)).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()

    c, rec := newTestContext(t, http.MethodDelete, "/actors/7", "")
    c.SetPath("/actors/:id")
    c.SetParamNames("id")
    c.SetParamValues("7")
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Delete(c))

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"success":true,"actor_id":7}`, rec.Body.String())
}

func TestActorDeleteNotFound(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectExec(qActorRelDelete).
        WithArgs(int64(9)).
        WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectExec(qActorDelete).
        WithArgs(int64(9)).
        WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectRollback()

    c, rec := newTestContext(t, http.MethodDelete, "/actors/9", "")
    c.SetPath("/actors/:id")
    c.SetParamNames("id")
    c.SetParamValues("9")
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Delete(c))

    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActorDeleteMalformedID(t *testing.T) {
    db, mock := newMockDB(t)

    c, rec := newTestContext(t, http.MethodDelete, "/actors/abc", "")
    c.SetPath("/actors/:id")
    c.SetParamNames("id")
    c.SetParamValues("abc")
    h := &ActorHandler{Actors: repository.NewActorRepo(db)}
    require.NoError(t, h.Delete(c))

    assert.Equal(t, http.StatusNotFound, rec.Code)
    // The store is never touched for an unparsable id.
    assert.NoError(t, mock.ExpectationsWereMet())
}
