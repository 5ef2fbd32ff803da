// Package config loads application configuration from environment
// variables. Required variables are enforced with must(); missing
// values halt startup with a fatal log message so misconfiguration is
// caught immediately rather than at the first failing request.
package config

import (
    "log"
    "os"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Exactly one of JWTSecret (development)
// or AuthIssuerURL+AuthAudience (production, external issuer) must be
// configured; Load enforces this.
type Config struct {
    Env    string // application environment (e.g. "dev", "prod")
    Port   string // HTTP port to listen on
    DBUser string // database username
    DBPass string // database password (optional)
    DBHost string // database host address
    DBPort string // database port number
    DBName string // database name

    JWTSecret       string // HS256 secret for development tokens (optional)
    AuthIssuerURL   string // trusted token issuer, e.g. https://tenant.auth0.com/
    AuthAudience    string // expected audience of issued tokens
    AuthClientID    string // client id used to assemble the authorize URL
    AuthCallbackURL string // redirect URL used to assemble the authorize URL
}

// Load reads configuration from the environment and validates that an
// auth mode is configured.
func Load() Config {
    cfg := Config{
        Env:    must("APP_ENV"),
        Port:   must("APP_PORT"),
        DBUser: must("DB_USER"),
        DBPass: os.Getenv("DB_PASS"),
        DBHost: must("DB_HOST"),
        DBPort: must("DB_PORT"),
        DBName: must("DB_NAME"),

        JWTSecret:       os.Getenv("JWT_SECRET"),
        AuthIssuerURL:   os.Getenv("AUTH_ISSUER_URL"),
        AuthAudience:    os.Getenv("AUTH_AUDIENCE"),
        AuthClientID:    os.Getenv("AUTH_CLIENT_ID"),
        AuthCallbackURL: os.Getenv("AUTH_CALLBACK_URL"),
    }
    if cfg.JWTSecret == "" && (cfg.AuthIssuerURL == "" || cfg.AuthAudience == "") {
        log.Fatal("auth not configured: set JWT_SECRET or AUTH_ISSUER_URL and AUTH_AUDIENCE")
    }
    return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
