package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/casting-agency/internal/model"
)

// MovieWithActors pairs a movie with the names of the actors cast in
// it. Actors is never nil: a movie with no relations carries an empty
// slice so list responses always render an array.
type MovieWithActors struct {
    model.Movie
    Actors []string
}

// MovieUpdate describes a partial update. Nil fields are left
// unchanged; non-nil fields are applied as a single atomic write.
type MovieUpdate struct {
    Title       *string
    ReleaseDate *time.Time
}

// MovieRepo encapsulates all database queries related to movies. It
// depends on a sql.DB connection pool injected at startup.
type MovieRepo struct {
    db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
    return &MovieRepo{db: db}
}

// ListWithActors returns all movies ordered by id ascending, each with
// the names of their linked actors. The LEFT JOIN keeps movies with no
// relations in the result; their name column scans as NULL and they get
// an empty actor list.
func (r *MovieRepo) ListWithActors(ctx context.Context) ([]*MovieWithActors, error) {
    const q = `SELECT m.id, m.title, m.release_date, a.name FROM movies m LEFT JOIN relations rel ON rel.movie_id = m.id LEFT JOIN actors a ON a.id = rel.actor_id ORDER BY m.id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := []*MovieWithActors{}
    var cur *MovieWithActors
    for rows.Next() {
        var (
            m    model.Movie
            name sql.NullString
        )
        if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseDate, &name); err != nil {
            return nil, err
        }
        if cur == nil || cur.ID != m.ID {
            cur = &MovieWithActors{Movie: m, Actors: []string{}}
            out = append(out, cur)
        }
        if name.Valid {
            cur.Actors = append(cur.Actors, name.String)
        }
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// GetByID fetches a movie by id. It returns ErrMovieNotFound if no row
// exists.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
    const q = `SELECT id, title, release_date FROM movies WHERE id = ?`
    var m model.Movie
    if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.ReleaseDate); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrMovieNotFound
        }
        return nil, err
    }
    return &m, nil
}

// Create inserts a new movie. On success the movie's ID field is
// populated with the auto-generated value.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
    const q = `INSERT INTO movies (title, release_date) VALUES (?, ?)`
    res, err := r.db.ExecContext(ctx, q, m.Title, m.ReleaseDate)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    m.ID = uint64(id)
    return nil
}

// Update applies a partial update and returns the resulting movie. The
// row is read and rewritten inside one transaction with a row lock, so
// the call is all-or-nothing. An update carrying no fields still
// succeeds and returns the movie unchanged.
func (r *MovieRepo) Update(ctx context.Context, id uint64, upd MovieUpdate) (*model.Movie, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    const qSelect = `SELECT id, title, release_date FROM movies WHERE id = ? FOR UPDATE`
    var m model.Movie
    if err = tx.QueryRowContext(ctx, qSelect, id).Scan(&m.ID, &m.Title, &m.ReleaseDate); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            err = ErrMovieNotFound
        }
        return nil, err
    }

    if upd.Title != nil {
        m.Title = *upd.Title
    }
    if upd.ReleaseDate != nil {
        m.ReleaseDate = *upd.ReleaseDate
    }

    const qUpdate = `UPDATE movies SET title = ?, release_date = ? WHERE id = ?`
    if _, err = tx.ExecContext(ctx, qUpdate, m.Title, m.ReleaseDate, m.ID); err != nil {
        return nil, err
    }
    if err = tx.Commit(); err != nil {
        return nil, err
    }
    return &m, nil
}

// Delete removes the movie and all relations referencing it as one
// transactional unit. Removing zero relations is fine; a missing movie
// rolls everything back and returns ErrMovieNotFound.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        }
    }()

    if _, err = tx.ExecContext(ctx, `DELETE FROM relations WHERE movie_id = ?`, id); err != nil {
        return err
    }
    var res sql.Result
    if res, err = tx.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id); err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        err = ErrMovieNotFound
        return err
    }
    err = tx.Commit()
    return err
}
