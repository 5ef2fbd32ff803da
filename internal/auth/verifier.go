package auth

import (
    "context"
    "errors"
    "fmt"

    "github.com/coreos/go-oidc/v3/oidc"
    "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by verifiers for any token that cannot be
// parsed, fails signature verification, is expired, or carries claims
// in an unexpected shape. Callers should not distinguish further: all
// of these are the same 401 to the outside.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates a raw bearer token and extracts the claims the API
// consumes. Implementations must be safe for concurrent use.
type Verifier interface {
    Verify(ctx context.Context, rawToken string) (*Claims, error)
}

// HMACVerifier validates HS256 tokens signed with a shared secret. It
// is used in development and tests, paired with cmd/tokengen. The
// production deployment verifies against the external issuer's key set
// instead (see OIDCVerifier).
type HMACVerifier struct {
    secret []byte
}

// NewHMACVerifier builds a verifier for tokens signed with secret.
func NewHMACVerifier(secret string) *HMACVerifier {
    return &HMACVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token, then lifts the sub and
// permissions claims into a Claims value.
func (v *HMACVerifier) Verify(_ context.Context, rawToken string) (*Claims, error) {
    tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
        // Only HMAC is acceptable here; reject anything else so an
        // attacker cannot downgrade the algorithm.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
        }
        return v.secret, nil
    })
    if err != nil || !tok.Valid {
        return nil, ErrInvalidToken
    }
    mc, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return nil, ErrInvalidToken
    }
    return claimsFromMap(mc), nil
}

// claimsFromMap extracts sub and permissions from decoded JWT claims.
// A missing or malformed permissions claim yields an empty set rather
// than an error; such a token is authenticated but can do nothing.
func claimsFromMap(mc jwt.MapClaims) *Claims {
    c := &Claims{Permissions: []string{}}
    if sub, ok := mc["sub"].(string); ok {
        c.Subject = sub
    }
    if raw, ok := mc["permissions"].([]interface{}); ok {
        for _, p := range raw {
            if s, ok := p.(string); ok {
                c.Permissions = append(c.Permissions, s)
            }
        }
    }
    return c
}

// OIDCVerifier validates RS256 tokens against a trusted issuer's
// published key set (JWKS). The issuer and expected audience are fixed
// at construction; key rotation is handled by the underlying provider.
type OIDCVerifier struct {
    verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer's configuration and returns a
// verifier bound to the given audience. Discovery performs a network
// round trip, so this should be called once at startup.
func NewOIDCVerifier(ctx context.Context, issuerURL, audience string) (*OIDCVerifier, error) {
    provider, err := oidc.NewProvider(ctx, issuerURL)
    if err != nil {
        return nil, fmt.Errorf("oidc discovery for %s: %w", issuerURL, err)
    }
    return &OIDCVerifier{
        verifier: provider.Verifier(&oidc.Config{ClientID: audience}),
    }, nil
}

// Verify checks the token's signature, issuer, audience and expiry,
// then extracts the permissions claim.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
    idToken, err := v.verifier.Verify(ctx, rawToken)
    if err != nil {
        return nil, ErrInvalidToken
    }
    var payload struct {
        Permissions []string `json:"permissions"`
    }
    if err := idToken.Claims(&payload); err != nil {
        return nil, ErrInvalidToken
    }
    if payload.Permissions == nil {
        payload.Permissions = []string{}
    }
    return &Claims{Subject: idToken.Subject, Permissions: payload.Permissions}, nil
}
