package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/casting-agency/internal/model"
)

// ActorWithMovies pairs an actor with the titles of the movies they are
// cast in. Movies is never nil: an actor with no relations carries an
// empty slice so list responses always render an array.
type ActorWithMovies struct {
    model.Actor
    Movies []string
}

// ActorUpdate describes a partial update. Nil fields are left
// unchanged; non-nil fields are applied as a single atomic write.
type ActorUpdate struct {
    Name   *string
    Age    *int
    Gender *model.Gender
}

// ActorRepo encapsulates all database queries related to actors. It
// depends on a sql.DB connection pool injected at startup.
type ActorRepo struct {
    db *sql.DB
}

// NewActorRepo constructs an ActorRepo with the provided DB handle.
func NewActorRepo(db *sql.DB) *ActorRepo {
    return &ActorRepo{db: db}
}

// ListWithMovies returns all actors ordered by id ascending, each with
// the titles of their linked movies. The LEFT JOIN keeps actors with no
// relations in the result; their title column scans as NULL and they
// get an empty movie list.
func (r *ActorRepo) ListWithMovies(ctx context.Context) ([]*ActorWithMovies, error) {
    const q = `SELECT a.id, a.name, a.age, a.gender, m.title FROM actors a LEFT JOIN relations rel ON rel.actor_id = a.id LEFT JOIN movies m ON m.id = rel.movie_id ORDER BY a.id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := []*ActorWithMovies{}
    var cur *ActorWithMovies
    for rows.Next() {
        var (
            a     model.Actor
            title sql.NullString
        )
        if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.Gender, &title); err != nil {
            return nil, err
        }
        // Rows arrive grouped by actor id; start a new entry whenever
        // the id changes.
        if cur == nil || cur.ID != a.ID {
            cur = &ActorWithMovies{Actor: a, Movies: []string{}}
            out = append(out, cur)
        }
        if title.Valid {
            cur.Movies = append(cur.Movies, title.String)
        }
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// GetByID fetches an actor by id. It returns ErrActorNotFound if no row
// exists.
func (r *ActorRepo) GetByID(ctx context.Context, id uint64) (*model.Actor, error) {
    const q = `SELECT id, name, age, gender FROM actors WHERE id = ?`
    var a model.Actor
    if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.Name, &a.Age, &a.Gender); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrActorNotFound
        }
        return nil, err
    }
    return &a, nil
}

// Create inserts a new actor. On success the actor's ID field is
// populated with the auto-generated value. The gender is validated
// before touching the database so a bad value never reaches the insert.
func (r *ActorRepo) Create(ctx context.Context, a *model.Actor) error {
    if !model.ValidGender(a.Gender) {
        return ErrInvalidGender
    }
    const q = `INSERT INTO actors (name, age, gender) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, a.Name, a.Age, a.Gender)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    a.ID = uint64(id)
    return nil
}

// Update applies a partial update and returns the resulting actor. The
// row is read and rewritten inside one transaction with a row lock, so
// the call is all-or-nothing: a rejected field leaves no side effect.
// An update carrying no fields still succeeds and returns the actor
// unchanged.
func (r *ActorRepo) Update(ctx context.Context, id uint64, upd ActorUpdate) (*model.Actor, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    const qSelect = `SELECT id, name, age, gender FROM actors WHERE id = ? FOR UPDATE`
    var a model.Actor
    if err = tx.QueryRowContext(ctx, qSelect, id).Scan(&a.ID, &a.Name, &a.Age, &a.Gender); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            err = ErrActorNotFound
        }
        return nil, err
    }

    if upd.Name != nil {
        a.Name = *upd.Name
    }
    if upd.Age != nil {
        a.Age = *upd.Age
    }
    if upd.Gender != nil {
        a.Gender = *upd.Gender
    }
    if !model.ValidGender(a.Gender) {
        err = ErrInvalidGender
        return nil, err
    }

    const qUpdate = `UPDATE actors SET name = ?, age = ?, gender = ? WHERE id = ?`
    if _, err = tx.ExecContext(ctx, qUpdate, a.Name, a.Age, a.Gender, a.ID); err != nil {
        return nil, err
    }
    if err = tx.Commit(); err != nil {
        return nil, err
    }
    return &a, nil
}

// Delete removes the actor and all relations referencing it as one
// transactional unit. Removing zero relations is fine; a missing actor
// rolls everything back and returns ErrActorNotFound, so a reader can
// never observe a relation without its parent or vice versa.
func (r *ActorRepo) Delete(ctx context.Context, id uint64) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    if _, err = tx.ExecContext(ctx, `DELETE FROM relations WHERE actor_id = ?`, id); err != nil {
        return err
    }
    var res sql.Result
    if res, err = tx.ExecContext(ctx, `DELETE FROM actors WHERE id = ?`, id); err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        err = ErrActorNotFound
        return err
    }
    err = tx.Commit()
    return err
}
