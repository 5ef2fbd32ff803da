package model

// Gender is the enumerated gender value stored for an actor. The set of
// accepted values matches the `gender` ENUM column on the actors table.
type Gender string

const (
    GenderFemale        Gender = "female"         // actors.gender = 'female'
    GenderMale          Gender = "male"           // actors.gender = 'male'
    GenderNotApplicable Gender = "not_applicable" // actors.gender = 'not_applicable'
)

// ValidGender reports whether g is one of the three enumerated values.
// Anything else must be rejected before it reaches the database.
func ValidGender(g Gender) bool {
    switch g {
    case GenderFemale, GenderMale, GenderNotApplicable:
        return true
    }
    return false
}

// Actor represents a performer that can be cast in zero or more movies.
// This struct corresponds to a row in the `actors` table.
type Actor struct {
    ID     uint64 // actors.id
    Name   string // actors.name
    Age    int    // actors.age
    Gender Gender // actors.gender
}
