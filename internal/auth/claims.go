// Package auth contains the credential verification and authorization
// logic that fronts every API operation. Verification (is this token
// real?) is separated from authorization (may this caller perform this
// operation?): verifiers produce a Claims value from a bearer token, and
// the Authorize predicate checks a single required permission against
// the permission set those claims carry.
package auth

// Claims is the verified identity extracted from a bearer token. Only
// the fields the API actually consumes are kept: the subject for
// logging/rate-limit keys and the permission set for authorization.
type Claims struct {
    Subject     string   // the token's sub claim
    Permissions []string // the token's permissions claim
}

// Has reports whether the claims carry the given permission.
func (c *Claims) Has(permission string) bool {
    if c == nil {
        return false
    }
    for _, p := range c.Permissions {
        if p == permission {
            return true
        }
    }
    return false
}
