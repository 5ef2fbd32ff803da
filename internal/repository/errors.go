// Package repository contains data access logic separated from HTTP
// handlers. This file defines the sentinel errors shared by the
// repositories. Handlers translate these into the API's error taxonomy:
// not-found errors become 404, ErrRelationExists becomes 409 and
// ErrInvalidGender becomes 422. Anything else is an internal database
// failure and is never exposed raw.
package repository

import (
    "errors"

    "github.com/go-sql-driver/mysql"
)

// ErrActorNotFound is returned when no actor exists for the given id.
var ErrActorNotFound = errors.New("actor not found")

// ErrMovieNotFound is returned when no movie exists for the given id.
var ErrMovieNotFound = errors.New("movie not found")

// ErrRelationNotFound is returned when no relation exists for the given
// (actor, movie) pair.
var ErrRelationNotFound = errors.New("relation not found")

// ErrRelationExists is returned when inserting a relation for a pair
// that is already linked. It is raised from the storage layer's primary
// key violation, not an application-level check, so two concurrent
// identical link requests can never both succeed.
var ErrRelationExists = errors.New("relation already exists")

// ErrInvalidGender is returned when a create or update would persist a
// gender outside the enumerated set.
var ErrInvalidGender = errors.New("invalid gender")

// MySQL server error numbers the repositories care about.
const (
    mysqlErrDuplicateEntry = 1062 // unique/primary key violation
    mysqlErrFKConstraint   = 1452 // child row insert with missing parent
)

func isMySQLErr(err error, number uint16) bool {
    var me *mysql.MySQLError
    return errors.As(err, &me) && me.Number == number
}
