package model

// Relation links one actor to one movie ("actor is cast in movie").
// The pair (MovieID, ActorID) is the composite primary key of the
// `relations` table, so at most one row can exist per pair. Rows are
// removed individually by the unlink operation or in bulk when either
// parent is deleted.
type Relation struct {
    MovieID uint64 // relations.movie_id
    ActorID uint64 // relations.actor_id
}
