package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/turtacn/DevFolio/pkg/errors"
)

const validConfigYAML = `
backend:
  origin: "https://api.example.com"
  timeout: 5s
server:
  port: 9000
  mode: debug
  cors:
    allowed_origins: ["https://site.example"]
log:
  level: debug
  format: console
metrics:
  enabled: false
notice:
  duration: 3s
`

// clearEnv neutralises every variable the loader reads.  Viper treats empty
// values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FOLIO_BACKEND_ORIGIN", "BACKEND_URL", "REACT_APP_BACKEND_URL",
		"FOLIO_BACKEND_TIMEOUT", "FOLIO_SERVER_PORT", "FOLIO_SERVER_MODE",
		"FOLIO_LOG_LEVEL", "FOLIO_LOG_FORMAT", "FOLIO_METRICS_ENABLED",
		"FOLIO_SERVER_CORS_ALLOWED_ORIGINS", "FOLIO_NOTICE_DURATION",
	} {
		t.Setenv(k, "")
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromFile_ValidConfig(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(WithConfigPath(createTempConfigFile(t, validConfigYAML)), WithoutDotEnv())
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Backend.Origin)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, []string{"https://site.example"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Notice.Duration)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout, "unset keys keep defaults")
}

func TestLoad_FromFile_FileNotFound(t *testing.T) {
	_, err := Load(WithConfigPath(filepath.Join(t.TempDir(), "missing.yaml")), WithoutDotEnv())
	assert.Error(t, err)
}

func TestLoad_FromFile_InvalidYAML(t *testing.T) {
	_, err := Load(WithConfigPath(createTempConfigFile(t, "backend: [unclosed")), WithoutDotEnv())
	assert.Error(t, err)
}

func TestLoad_MissingOriginIsConfigError(t *testing.T) {
	clearEnv(t)
	_, err := Load(WithoutDotEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, folioerrors.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "backend.origin is required")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_SERVER_PORT", "7070")
	t.Setenv("FOLIO_BACKEND_ORIGIN", "http://env.example")

	cfg, err := Load(WithConfigPath(createTempConfigFile(t, validConfigYAML)), WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "http://env.example", cfg.Backend.Origin)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_BACKEND_ORIGIN", "http://localhost:8001")
	t.Setenv("FOLIO_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("FOLIO_NOTICE_DURATION", "20s")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001", cfg.Backend.Origin)
	assert.Equal(t, DefaultBackendTimeout, cfg.Backend.Timeout)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, DefaultRateLimitBurst, cfg.Server.RateLimit.Burst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, 20*time.Second, cfg.Notice.Duration)
}

func TestLoad_LegacyOriginVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("REACT_APP_BACKEND_URL", "http://react.example")
	cfg, err := Load(WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, "http://react.example", cfg.Backend.Origin)

	t.Setenv("BACKEND_URL", "http://backend.example")
	cfg, err = Load(WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, "http://backend.example", cfg.Backend.Origin)

	t.Setenv("FOLIO_BACKEND_ORIGIN", "http://folio.example")
	cfg, err = Load(WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, "http://folio.example", cfg.Backend.Origin)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("BACKEND_URL")
	t.Cleanup(func() { os.Unsetenv("BACKEND_URL") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BACKEND_URL=http://dotenv.example\n"), 0o644))

	cfg, err := Load(WithDotEnv(envFile))
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.example", cfg.Backend.Origin)
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoad_WithSearchPaths(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"), []byte(validConfigYAML), 0o644))

	cfg, err := Load(WithSearchPaths(t.TempDir(), dir), WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_WithSearchPaths_NoneFound(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_BACKEND_ORIGIN", "http://localhost")
	cfg, err := Load(WithSearchPaths(t.TempDir()), WithoutDotEnv())
	require.NoError(t, err)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
}

func TestLoad_WithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_LOG_LEVEL", "warn")
	cfg, err := Load(
		WithConfigPath(createTempConfigFile(t, validConfigYAML)),
		WithOverrides(map[string]interface{}{
			"server.port":    7777,
			"backend.origin": "http://flag.example",
			"log.level":      "",
		}),
		WithoutDotEnv(),
	)
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "http://flag.example", cfg.Backend.Origin)
	assert.Equal(t, "warn", cfg.Log.Level, "empty overrides do not mask env")
}

func TestLoadFromFile_Convenience(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestMustLoad(t *testing.T) {
	clearEnv(t)
	path := createTempConfigFile(t, validConfigYAML)
	assert.NotPanics(t, func() { MustLoad(WithConfigPath(path), WithoutDotEnv()) })
	assert.Panics(t, func() { MustLoad(WithConfigPath("non_existent.yaml"), WithoutDotEnv()) })
}

func TestLoad_SetsCurrent(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(WithConfigPath(createTempConfigFile(t, validConfigYAML)), WithoutDotEnv())
	require.NoError(t, err)
	assert.Same(t, cfg, Get())
}

func TestWatch_FileMissing(t *testing.T) {
	err := Watch(filepath.Join(t.TempDir(), "missing.yaml"), func(*Config) {}, nil)
	assert.Error(t, err)
}

func TestReload(t *testing.T) {
	clearEnv(t)
	v := newViper()
	v.SetConfigFile(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, v.ReadInConfig())

	var got *Config
	reload(v, func(c *Config) { got = c }, nil)
	require.NotNil(t, got)
	assert.Equal(t, "debug", got.Log.Level)

	v.Set("log.level", "loud")
	var reloadErr error
	got = nil
	reload(v, func(c *Config) { got = c }, func(err error) { reloadErr = err })
	assert.Nil(t, got)
	assert.ErrorIs(t, reloadErr, folioerrors.ErrInvalidConfig)
}
