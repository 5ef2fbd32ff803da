package auth

import "net/http"

// DenyReason distinguishes the three externally observable ways a
// request can be refused before it reaches a handler. Missing and
// invalid credentials both surface as 401, a valid credential without
// the required permission surfaces as 403.
type DenyReason int

const (
    DenyMissingCredential DenyReason = iota // no bearer token presented
    DenyInvalidCredential                   // token failed verification
    DenyInsufficientPermission              // token valid, permission absent
)

// AuthError is returned when a request is denied. It carries the deny
// reason so middleware can translate it into the right status code and
// tests can assert on the exact cause rather than just the status.
type AuthError struct {
    Reason  DenyReason
    Message string
}

func (e *AuthError) Error() string {
    return e.Message
}

// StatusCode maps the deny reason onto its HTTP status.
func (e *AuthError) StatusCode() int {
    if e.Reason == DenyInsufficientPermission {
        return http.StatusForbidden
    }
    return http.StatusUnauthorized
}

// Authorize decides whether the verified claims permit an operation
// guarded by the given permission. It is a pure predicate: no state is
// kept between calls. A nil claims value means no credential survived
// verification and is reported as a missing credential.
func Authorize(required string, claims *Claims) *AuthError {
    if claims == nil {
        return &AuthError{Reason: DenyMissingCredential, Message: "authorization required"}
    }
    if !claims.Has(required) {
        return &AuthError{Reason: DenyInsufficientPermission, Message: "permission " + required + " required"}
    }
    return nil
}
