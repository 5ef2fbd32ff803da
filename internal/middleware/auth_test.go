package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/casting-agency/internal/auth"
)

const testSecret = "test-secret"

func testToken(t *testing.T, permissions []string) string {
    t.Helper()
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "sub":         "u1",
        "permissions": permissions,
        "exp":         time.Now().Add(time.Hour).Unix(),
    }).SignedString([]byte(testSecret))
    require.NoError(t, err)
    return signed
}

// newGuardedEcho builds an echo instance with one route protected by
// Authenticate + RequirePermission, mirroring how the router wires the
// real API.
func newGuardedEcho(invoked *bool) *echo.Echo {
    e := echo.New()
    e.GET("/actors",
        func(c echo.Context) error {
            *invoked = true
            return c.JSON(http.StatusOK, echo.Map{"success": true})
        },
        Authenticate(auth.NewHMACVerifier(testSecret)),
        RequirePermission(auth.PermGetActors),
    )
    return e
}

func TestAuthenticateMissingHeader(t *testing.T) {
    invoked := false
    e := newGuardedEcho(&invoked)

    req := httptest.NewRequest(http.MethodGet, "/actors", nil)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.False(t, invoked)
    assert.JSONEq(t,
        `{"success":false,"message":"authorization header with bearer token expected","error_code":401}`,
        rec.Body.String())
}

func TestAuthenticateInvalidToken(t *testing.T) {
    invoked := false
    e := newGuardedEcho(&invoked)

    req := httptest.NewRequest(http.MethodGet, "/actors", nil)
    req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.False(t, invoked)
}

func TestRequirePermissionDenied(t *testing.T) {
    invoked := false
    e := newGuardedEcho(&invoked)

    req := httptest.NewRequest(http.MethodGet, "/actors", nil)
    req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken(t, []string{auth.PermGetMovies}))
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    // Valid credential, wrong permission: 403, and the handler (and
    // therefore the store) is never reached.
    assert.Equal(t, http.StatusForbidden, rec.Code)
    assert.False(t, invoked)
}

func TestRequirePermissionAllowed(t *testing.T) {
    invoked := false
    e := newGuardedEcho(&invoked)

    req := httptest.NewRequest(http.MethodGet, "/actors", nil)
    req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken(t, []string{auth.PermGetActors}))
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.True(t, invoked)
}

func TestClaimsFromContext(t *testing.T) {
    e := echo.New()
    var got *auth.Claims
    e.GET("/whoami",
        func(c echo.Context) error {
            got = ClaimsFrom(c)
            return c.NoContent(http.StatusOK)
        },
        Authenticate(auth.NewHMACVerifier(testSecret)),
    )

    req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
    req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken(t, []string{auth.PermGetActors}))
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    require.NotNil(t, got)
    assert.Equal(t, "u1", got.Subject)
    assert.Equal(t, []string{auth.PermGetActors}, got.Permissions)
}
