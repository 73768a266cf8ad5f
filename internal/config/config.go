// Package config loads application configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Addr        string // HTTP listen address
	DatabaseURL string // PostgreSQL connection string; empty selects the embedded store
	SQLitePath  string // embedded database file

	SMSAccountSID string // SMS gateway account
	SMSAuthToken  string // SMS gateway credential
	SMSFrom       string // sending phone number
	SMSTo         string // number entry notifications go to

	OIDCIssuer       string // OIDC issuer URL; empty disables SSO
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load reads configuration from the environment, honoring a .env file if one
// is present.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Addr:        env("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  env("SQLITE_PATH", "weightlog.db"),

		SMSAccountSID: os.Getenv("SMS_ACCOUNT_SID"),
		SMSAuthToken:  os.Getenv("SMS_AUTH_TOKEN"),
		SMSFrom:       os.Getenv("SMS_FROM"),
		SMSTo:         os.Getenv("SMS_TO"),

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
