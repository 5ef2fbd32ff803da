package repository

import (
    "database/sql"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/require"
)

// newMockDB returns a sqlmock-backed DB using exact query matching, so
// each test asserts the literal SQL a repository issues.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
    require.NoError(t, err)
    t.Cleanup(func() { _ = db.Close() })
    return db, mock
}
