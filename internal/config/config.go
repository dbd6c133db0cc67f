package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Data
	DataDir          string // directory holding the three CSV exports
	DatasetsFile     string // optional datasets.yaml overriding file names
	TableRowLimit    int    // max rows shown in dashboard tables (export is never truncated)
	WatchIntervalSec int    // seconds between dataset file checks; 0 disables the watcher

	// OIDC (optional; the dashboard is open when unset)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)
	RedisURL      string // Optional redis-backed session storage

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Clay Analytics"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		DataDir:          getEnv("DATA_DIR", "data"),
		DatasetsFile:     getEnv("DATASETS_FILE", "datasets.yaml"),
		TableRowLimit:    getEnvInt("TABLE_ROW_LIMIT", 500),
		WatchIntervalSec: getEnvInt("WATCH_INTERVAL_SEC", 300),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:         getEnv("REDIS_URL", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Clay Analytics"),
		SiteTagline: getEnv("SITE_TAGLINE", "Business intelligence for the built environment"),
		SiteFooter:  getEnv("SITE_FOOTER", "Clay Analytics - Strategic Business Intelligence"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AuthEnabled returns true when the dashboard is gated behind OIDC SSO.
func (c *Config) AuthEnabled() bool {
	return c.OIDCIssuer != ""
}
