package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/casting-agency/internal/model"
)

// RelationRepo manages the cast relation rows joining actors to movies.
type RelationRepo struct {
    db *sql.DB
}

// NewRelationRepo constructs a RelationRepo with the provided DB handle.
func NewRelationRepo(db *sql.DB) *RelationRepo {
    return &RelationRepo{db: db}
}

// Link creates the relation casting an actor in a movie. Both parents
// are checked first so a missing movie or actor reports not-found
// rather than a bare constraint failure. The insert itself is still
// guarded by the composite primary key: if the pair already exists, or
// two identical link requests race, the losing insert surfaces as
// ErrRelationExists. A parent deleted between the checks and the insert
// trips the foreign key and is reported as the corresponding not-found.
func (r *RelationRepo) Link(ctx context.Context, movieID, actorID uint64) (*model.Relation, error) {
    var one int
    if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE id = ?`, movieID).Scan(&one); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrMovieNotFound
        }
        return nil, err
    }
    if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM actors WHERE id = ?`, actorID).Scan(&one); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrActorNotFound
        }
        return nil, err
    }

    const q = `INSERT INTO relations (movie_id, actor_id) VALUES (?, ?)`
    if _, err := r.db.ExecContext(ctx, q, movieID, actorID); err != nil {
        if isMySQLErr(err, mysqlErrDuplicateEntry) {
            return nil, ErrRelationExists
        }
        if isMySQLErr(err, mysqlErrFKConstraint) {
            return nil, ErrMovieNotFound
        }
        return nil, err
    }
    return &model.Relation{MovieID: movieID, ActorID: actorID}, nil
}

// Unlink removes the relation for the exact (actor, movie) pair. Both
// ids must match the same row; deleting a pair that was never linked
// returns ErrRelationNotFound.
func (r *RelationRepo) Unlink(ctx context.Context, actorID, movieID uint64) error {
    const q = `DELETE FROM relations WHERE actor_id = ? AND movie_id = ?`
    res, err := r.db.ExecContext(ctx, q, actorID, movieID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrRelationNotFound
    }
    return nil
}
