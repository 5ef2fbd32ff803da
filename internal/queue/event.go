// Package queue defines the messages exchanged over the broker and the
// background consumer that records them.
package queue

// Action identifies what happened to the catalog.
type Action string

const (
    ActionActorCreated     Action = "actor.created"
    ActionActorUpdated     Action = "actor.updated"
    ActionActorDeleted     Action = "actor.deleted"
    ActionMovieCreated     Action = "movie.created"
    ActionMovieUpdated     Action = "movie.updated"
    ActionMovieDeleted     Action = "movie.deleted"
    ActionRelationLinked   Action = "relation.linked"
    ActionRelationUnlinked Action = "relation.unlinked"
)

// CastingEvent is published after every successful mutation. It carries
// only identifiers; consumers needing full records query the API. A
// zero MovieID or ActorID means the action does not involve that side.
type CastingEvent struct {
    Action     Action `json:"action"`
    MovieID    uint64 `json:"movie_id,omitempty"`
    ActorID    uint64 `json:"actor_id,omitempty"`
    OccurredAt string `json:"occurred_at"`
}
