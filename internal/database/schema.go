package database

import (
    "context"
    "database/sql"
)

// schema contains the idempotent DDL for the three tables. The
// composite primary key on relations is what enforces the one-row-per
// (movie, actor) pair invariant at the storage layer; the foreign keys
// guarantee a relation can never reference a missing parent.
var schema = []string{
    `CREATE TABLE IF NOT EXISTS actors (
        id     BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        name   VARCHAR(255) NOT NULL,
        age    INT NOT NULL,
        gender ENUM('female','male','not_applicable') NOT NULL,
        PRIMARY KEY (id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

    `CREATE TABLE IF NOT EXISTS movies (
        id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        title        VARCHAR(255) NOT NULL,
        release_date DATE NOT NULL,
        PRIMARY KEY (id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

    `CREATE TABLE IF NOT EXISTS relations (
        movie_id BIGINT UNSIGNED NOT NULL,
        actor_id BIGINT UNSIGNED NOT NULL,
        PRIMARY KEY (movie_id, actor_id),
        CONSTRAINT fk_relations_movie FOREIGN KEY (movie_id) REFERENCES movies (id),
        CONSTRAINT fk_relations_actor FOREIGN KEY (actor_id) REFERENCES actors (id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables if they do not exist yet. It runs at
// startup so a fresh database is usable without separate migration
// tooling.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
    for _, ddl := range schema {
        if _, err := db.ExecContext(ctx, ddl); err != nil {
            return err
        }
    }
    return nil
}
