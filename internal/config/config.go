package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Wikipedia API
	WikiAPIURL    string        // env: WIKI_API_URL
	WikiBaseURL   string        // env: WIKI_BASE_URL, article link prefix
	UserAgent     string        // env: USER_AGENT, sent on every outbound call
	LookupTimeout time.Duration // env: LOOKUP_TIMEOUT, per-call budget
	LookupRetries int           // env: LOOKUP_RETRIES, retries on transient failures

	// Peer suggestions
	MaxPeers      int     // env: MAX_PEERS, cap on peers in the result
	MaxCategories int     // env: MAX_CATEGORIES, article categories scanned for peers
	PeerRate      float64 // env: PEER_RATE, peer lookups per second

	// Cache (optional; lookups work without it)
	CacheURL string        // env: CACHE_URL, redis:// URL; empty disables caching
	CacheTTL time.Duration // env: CACHE_TTL

	// Signal set
	SignalsFile string // env: SIGNALS_FILE, optional YAML override

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),

		WikiAPIURL:    getEnv("WIKI_API_URL", "https://en.wikipedia.org/w/api.php"),
		WikiBaseURL:   getEnv("WIKI_BASE_URL", "https://en.wikipedia.org/wiki/"),
		UserAgent:     getEnv("USER_AGENT", "PEOwnershipChecker/1.0 (contact: ops@example.com)"),
		LookupTimeout: getEnvDuration("LOOKUP_TIMEOUT", 20*time.Second),
		LookupRetries: getEnvInt("LOOKUP_RETRIES", 3),

		MaxPeers:      getEnvInt("MAX_PEERS", 8),
		MaxCategories: getEnvInt("MAX_CATEGORIES", 2),
		PeerRate:      getEnvFloat("PEER_RATE", 2.5),

		CacheURL: getEnv("CACHE_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", 15*time.Minute),

		SignalsFile: getEnv("SIGNALS_FILE", "signals.yaml"),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "PE Ownership Checker"),
		SiteTagline: getEnv("SITE_TAGLINE", "Heuristic Wikipedia-based ownership lookup"),
		SiteFooter:  getEnv("SITE_FOOTER", "PE Ownership Checker - verify results manually"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
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
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
