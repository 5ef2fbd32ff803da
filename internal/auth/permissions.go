package auth

// Permission identifiers, one per API operation. Tokens carry a subset
// of these in their permissions claim.
const (
    PermGetActors            = "get:actors"
    PermGetMovies            = "get:movies"
    PermPostActors           = "post:actors"
    PermPostMovies           = "post:movies"
    PermPostActorToMovie     = "post:actor_to_movie"
    PermDeleteActor          = "delete:actor"
    PermDeleteMovie          = "delete:movie"
    PermDeleteActorFromMovie = "delete:actor_from_movie"
    PermPatchActor           = "patch:actor"
    PermPatchMovie           = "patch:movie"
)

// RolePermissions maps the agency's three staff roles onto their
// permission sets. Production tokens are minted by the external issuer
// with these sets attached; the map is used by cmd/tokengen to produce
// equivalent development tokens.
var RolePermissions = map[string][]string{
    "casting_assistant": {
        PermGetActors,
        PermGetMovies,
    },
    "casting_director": {
        PermGetActors,
        PermGetMovies,
        PermPostActors,
        PermDeleteActor,
        PermPatchActor,
        PermPatchMovie,
        PermPostActorToMovie,
        PermDeleteActorFromMovie,
    },
    "executive_producer": {
        PermGetActors,
        PermGetMovies,
        PermPostActors,
        PermPostMovies,
        PermDeleteActor,
        PermDeleteMovie,
        PermPatchActor,
        PermPatchMovie,
        PermPostActorToMovie,
        PermDeleteActorFromMovie,
    },
}
