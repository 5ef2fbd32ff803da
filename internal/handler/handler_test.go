package handler

import (
    "database/sql"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/require"
)

// newMockDB returns a sqlmock-backed DB using exact query matching.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
    require.NoError(t, err)
    t.Cleanup(func() { _ = db.Close() })
    return db, mock
}

// newTestContext builds an echo context for invoking a handler directly.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    var reader *strings.Reader
    if body == "" {
        reader = strings.NewReader("")
    } else {
        reader = strings.NewReader(body)
    }
    req := httptest.NewRequest(method, target, reader)
    if body != "" {
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    return echo.New().NewContext(req, rec), rec
}
