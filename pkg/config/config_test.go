package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIHost, cfg.APIHost)
	assert.Equal(t, DefaultAPIPort, cfg.APIPort)
	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yml")
	writeFile(t, path, `
api_port: 8080
db_driver: sqlite
db_path: /tmp/exerlog.sqlite3
cors_origins:
  - https://example.com
log_level: debug
swagger_enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/exerlog.sqlite3", cfg.DBPath)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SwaggerEnabled)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("does-not-exist.yml")
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, DefaultEnvFile), "EXERLOG_LOG_LEVEL=warn\n")
	// godotenv sets the variable for the whole process
	t.Cleanup(func() { os.Unsetenv("EXERLOG_LOG_LEVEL") })
	t.Setenv("EXERLOG_DB_DRIVER", "sqlite")
	t.Setenv("PORT", "4321")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4321, cfg.APIPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "http")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{APIPort: 3000, DBDriver: DriverMemory, DBPath: DefaultDBPath, LogLevel: "info"}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"sqlite with path", func(c *Config) { c.DBDriver = DriverSQLite }, false},
		{"sqlite without path", func(c *Config) { c.DBDriver = DriverSQLite; c.DBPath = "" }, true},
		{"unknown driver", func(c *Config) { c.DBDriver = "postgres" }, true},
		{"port out of range", func(c *Config) { c.APIPort = 70000 }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"uppercase log level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"missing static dir", func(c *Config) { c.StaticDir = "/nonexistent/exerlog" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
