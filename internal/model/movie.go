package model

import "time"

// Movie represents a production that can have zero or more actors cast
// in it. This struct corresponds to a row in the `movies` table. The
// release date is stored as a DATE column; only the day component is
// meaningful.
type Movie struct {
    ID          uint64    // movies.id
    Title       string    // movies.title
    ReleaseDate time.Time // movies.release_date
}

// ReleaseDateLayout is the wire format for movie release dates, both on
// input (create/update payloads) and output (list/update responses).
const ReleaseDateLayout = "2006-01-02"
