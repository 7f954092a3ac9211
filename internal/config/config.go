package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/DevFolio/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// BackendConfig locates the portfolio REST API.
type BackendConfig struct {
	// Origin is the scheme and host of the API, e.g. https://api.example.com.
	// Requests go to {Origin}/api.
	Origin    string        `mapstructure:"origin"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Host            string          `mapstructure:"host"`
	Port            int             `mapstructure:"port"`
	Mode            string          `mapstructure:"mode"` // debug | release | test
	ReadTimeout     time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration   `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	CORS            CORSConfig      `mapstructure:"cors"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CORSConfig lists the origins allowed to read the portfolio API.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig bounds how often one client may trigger a new acquisition
// through the retry endpoints.
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
	Runtime   bool   `mapstructure:"runtime"` // go and process collectors
}

// NoticeConfig controls the degraded-mode banner.
type NoticeConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration object for DevFolio.
type Config struct {
	Backend BackendConfig     `mapstructure:"backend"`
	Server  ServerConfig      `mapstructure:"server"`
	Log     logging.LogConfig `mapstructure:"log"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
	Notice  NoticeConfig      `mapstructure:"notice"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

func invalid(format string, args ...interface{}) error {
	return errors.InvalidConfig(fmt.Sprintf(format, args...))
}

// ValidateOrigin checks that origin is an absolute http(s) URL with a host.
func ValidateOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return invalid("backend.origin is required (set FOLIO_BACKEND_ORIGIN or BACKEND_URL)")
	}
	u, err := url.Parse(origin)
	if err != nil {
		return invalid("backend.origin %q is not a valid URL: %v", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return invalid("backend.origin %q must use http or https", origin)
	}
	if u.Host == "" {
		return invalid("backend.origin %q has no host", origin)
	}
	return nil
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; every error matches
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	// Backend
	if err := ValidateOrigin(c.Backend.Origin); err != nil {
		return err
	}
	if c.Backend.Timeout <= 0 {
		return invalid("backend.timeout must be positive, got %s", c.Backend.Timeout)
	}

	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return invalid("server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Server.RateLimit.Enabled {
		if c.Server.RateLimit.RPS <= 0 {
			return invalid("server.rate_limit.rps must be positive, got %v", c.Server.RateLimit.RPS)
		}
		if c.Server.RateLimit.Burst < 1 {
			return invalid("server.rate_limit.burst must be >= 1, got %d", c.Server.RateLimit.Burst)
		}
	}

	// Log
	switch c.Log.Level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return invalid("log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return invalid("log.format %q is invalid; expected json|console", c.Log.Format)
	}

	// Metrics
	if c.Metrics.Enabled {
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return invalid("metrics.path %q must start with /", c.Metrics.Path)
		}
		if c.Metrics.Namespace == "" {
			return invalid("metrics.namespace is required when metrics are enabled")
		}
	}

	// Notice
	if c.Notice.Duration <= 0 {
		return invalid("notice.duration must be positive, got %s", c.Notice.Duration)
	}

	return nil
}
