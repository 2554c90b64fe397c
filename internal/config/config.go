// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server  ServerConfig
	Viewer  ViewerConfig
	Prefs   PrefsConfig
	Rate    RateLimitConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	// Addr is the listen address (default: :8080)
	Addr string `env:"LITGRID_ADDR" envAlt:"LITGRID_LISTEN" default:":8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"LITGRID_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `env:"LITGRID_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"LITGRID_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"LITGRID_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout per request (default: 60s)
	RequestTimeout time.Duration `env:"LITGRID_REQUEST_TIMEOUT" default:"60s"`
}

// ViewerConfig holds the viewer defaults handed to the core at load time.
type ViewerConfig struct {
	// Title is the page or window title (default: Literature Viewer)
	Title string `env:"LITGRID_TITLE" default:"Literature Viewer"`

	// PageSize is the table page length (default: 20)
	PageSize int `env:"LITGRID_PAGE_SIZE" default:"20"`

	// VisibleColumns is a comma-separated list of field keys visible by
	// default. Unset means every inferred field starts visible.
	VisibleColumns []string `env:"LITGRID_VISIBLE_COLUMNS"`

	// SearchField preselects the search field; empty means whole-table search.
	SearchField string `env:"LITGRID_SEARCH_FIELD"`

	// TrustMarkup passes producer-supplied cell markup through unescaped
	// (default: false). Only enable for trusted producers.
	TrustMarkup bool `env:"LITGRID_TRUST_MARKUP" default:"false"`

	// MaxKeywords caps the keyword distribution in the summary (default: 50)
	MaxKeywords int `env:"LITGRID_MAX_KEYWORDS" default:"50"`
}

// PrefsConfig holds client-local preference storage settings for the
// terminal and export surfaces. The web surface stores preferences in
// cookies and ignores this.
type PrefsConfig struct {
	// Path is the preference file location. Unset means the per-user
	// default under os.UserConfigDir.
	Path string `env:"LITGRID_PREFS_PATH"`
}

// RateLimitConfig holds per-IP rate limiting settings for serve mode.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"LITGRID_RATE_LIMIT_ENABLED" default:"true"`

	// RPS is the sustained request rate per IP per second (default: 10)
	RPS int `env:"LITGRID_RATE_LIMIT_RPS" default:"10"`

	// Burst is the token bucket depth per IP (default: 50)
	Burst int `env:"LITGRID_RATE_LIMIT_BURST" default:"50"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LITGRID_LOG_LEVEL" default:"info"`

	// Format is the log format: text, json, terminal or auto (default: auto).
	// Auto picks terminal when stderr is a TTY and text otherwise.
	Format string `env:"LITGRID_LOG_FORMAT" default:"auto"`
}
