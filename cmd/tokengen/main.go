// Command tokengen mints HS256 development tokens carrying the
// permission set of one of the agency's roles. The resulting token is
// accepted by a server running with the same JWT_SECRET; production
// tokens come from the external issuer instead.
package main

import (
    "flag"
    "fmt"
    "log"
    "os"
    "sort"
    "strings"
    "time"

    "github.com/golang-jwt/jwt/v5"

    "github.com/iliyamo/casting-agency/internal/auth"
)

func main() {
    role := flag.String("role", "casting_assistant", "role whose permissions the token carries")
    sub := flag.String("sub", "dev-user", "token subject")
    ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
    secret := flag.String("secret", os.Getenv("JWT_SECRET"), "HS256 signing secret (defaults to JWT_SECRET)")
    flag.Parse()

    if *secret == "" {
        log.Fatal("no signing secret: pass -secret or set JWT_SECRET")
    }
    perms, ok := auth.RolePermissions[*role]
    if !ok {
        names := make([]string, 0, len(auth.RolePermissions))
        for name := range auth.RolePermissions {
            names = append(names, name)
        }
        sort.Strings(names)
        log.Fatalf("unknown role %q; known roles: %s", *role, strings.Join(names, ", "))
    }

    now := time.Now().UTC()
    claims := jwt.MapClaims{
        "sub":         *sub,
        "permissions": perms,
        "iat":         now.Unix(),
        "exp":         now.Add(*ttl).Unix(),
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
    if err != nil {
        log.Fatalf("sign token: %v", err)
    }
    fmt.Println(signed)
}
