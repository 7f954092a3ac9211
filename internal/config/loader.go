package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "FOLIO"

// legacyOriginEnv names the backend origin variables understood for
// compatibility with existing deployments, in priority order after
// FOLIO_BACKEND_ORIGIN.
var legacyOriginEnv = []string{"BACKEND_URL", "REACT_APP_BACKEND_URL"}

// configName is the file base name looked up in search paths.
const configName = "folio"

var current atomic.Pointer[Config]

// newViper builds a pre-configured Viper instance: YAML file type, FOLIO_ env
// prefix, automatic env binding, and a key replacer that maps "." → "_" so
// that nested keys like "backend.origin" resolve to "FOLIO_BACKEND_ORIGIN".
// Every key is seeded with its default so that env-only loading sees it.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("backend.origin", "")
	v.SetDefault("backend.timeout", DefaultBackendTimeout)
	v.SetDefault("backend.user_agent", "")
	v.SetDefault("server.host", DefaultServerHost)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.mode", DefaultServerMode)
	v.SetDefault("server.read_timeout", DefaultServerReadTimeout)
	v.SetDefault("server.write_timeout", DefaultServerWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultServerShutdownTimeout)
	v.SetDefault("server.cors.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("server.rate_limit.enabled", DefaultRateLimitEnabled)
	v.SetDefault("server.rate_limit.rps", DefaultRateLimitRPS)
	v.SetDefault("server.rate_limit.burst", DefaultRateLimitBurst)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("metrics.enabled", DefaultMetricsEnabled)
	v.SetDefault("metrics.path", DefaultMetricsPath)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("metrics.runtime", false)
	v.SetDefault("notice.duration", DefaultNoticeDuration)

	_ = v.BindEnv(append([]string{"backend.origin", envPrefix + "_BACKEND_ORIGIN"}, legacyOriginEnv...)...)
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Load options
// ─────────────────────────────────────────────────────────────────────────────

type loadOptions struct {
	configPath  string
	searchPaths []string
	overrides   map[string]interface{}
	dotEnv      []string
	skipDotEnv  bool
}

// LoadOption customises Load.
type LoadOption func(*loadOptions)

// WithConfigPath reads exactly this YAML file.  A missing file is an error.
func WithConfigPath(path string) LoadOption {
	return func(o *loadOptions) { o.configPath = path }
}

// WithSearchPaths looks for folio.yaml in each directory.  Finding none is
// not an error.
func WithSearchPaths(dirs ...string) LoadOption {
	return func(o *loadOptions) { o.searchPaths = append(o.searchPaths, dirs...) }
}

// WithOverrides sets keys with the highest priority, above env and file.
// Empty string values are skipped so unset CLI flags do not mask env.
func WithOverrides(overrides map[string]interface{}) LoadOption {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]interface{}, len(overrides))
		}
		for k, val := range overrides {
			o.overrides[k] = val
		}
	}
}

// WithDotEnv loads these files instead of ./.env.
func WithDotEnv(paths ...string) LoadOption {
	return func(o *loadOptions) { o.dotEnv = paths }
}

// WithoutDotEnv skips .env loading.
func WithoutDotEnv() LoadOption {
	return func(o *loadOptions) { o.skipDotEnv = true }
}

// LoadDotEnv loads variables from the given files (./.env when none) into the
// process environment without overriding variables already set.  Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Loading
// ─────────────────────────────────────────────────────────────────────────────

// Load resolves configuration from, in priority order: overrides, FOLIO_*
// environment variables (plus BACKEND_URL and REACT_APP_BACKEND_URL for the
// backend origin), the YAML file, and defaults.  A ./.env file is loaded
// into the environment first when present.  The result is validated and
// becomes the value returned by Get.
func Load(opts ...LoadOption) (*Config, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if !o.skipDotEnv {
		if err := LoadDotEnv(o.dotEnv...); err != nil {
			return nil, err
		}
	}

	v := newViper()
	switch {
	case o.configPath != "":
		v.SetConfigFile(o.configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", o.configPath, err)
		}
	case len(o.searchPaths) > 0:
		v.SetConfigName(configName)
		for _, dir := range o.searchPaths {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: failed to read config: %w", err)
			}
		}
	}

	for k, val := range o.overrides {
		if s, ok := val.(string); ok && s == "" {
			continue
		}
		v.Set(k, val)
	}

	cfg, err := unmarshalAndFinalize(v)
	if err != nil {
		return nil, err
	}
	current.Store(cfg)
	return cfg, nil
}

// LoadFromFile is Load(WithConfigPath(path)).
func LoadFromFile(path string) (*Config, error) {
	return Load(WithConfigPath(path))
}

// LoadFromEnv builds a Config from environment variables only, with no
// config file.  This is the preferred strategy for containerised
// deployments.
//
//	FOLIO_<SECTION>_<FIELD>   e.g.  FOLIO_BACKEND_ORIGIN, FOLIO_SERVER_PORT
func LoadFromEnv() (*Config, error) {
	return Load()
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Get returns the last Config produced by Load, or nil.
func Get() *Config { return current.Load() }

// MustLoad is Load that panics on any error.  It is intended for main()
// where a config-load failure is always fatal.
func MustLoad(opts ...LoadOption) *Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

// ─────────────────────────────────────────────────────────────────────────────
// Watch
// ─────────────────────────────────────────────────────────────────────────────

// Watch monitors configPath and invokes onChange with the newly parsed Config
// whenever the file is modified.  It is meant for hot-reloading the log
// level; callers apply only the safe subset of changes.  An invalid change
// is reported to onError (when non-nil) and onChange is not called.
func Watch(configPath string, onChange func(*Config), onError func(error)) error {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	v.OnConfigChange(func(_ fsnotify.Event) { reload(v, onChange, onError) })
	v.WatchConfig()
	return nil
}

func reload(v *viper.Viper, onChange func(*Config), onError func(error)) {
	cfg, err := unmarshalAndFinalize(v)
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	current.Store(cfg)
	onChange(cfg)
}
