package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Storage settings
	DBDriver string `mapstructure:"db_driver"` // "memory" or "sqlite"
	DBPath   string `mapstructure:"db_path"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional front page and assets
	StaticDir string `mapstructure:"static_dir"`

	SwaggerEnabled bool `mapstructure:"swagger_enabled"`

	// Optional logging settings
	LogFile       string `mapstructure:"log_file"`
	LogLevel      string `mapstructure:"log_level"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`

	ConfigPath string `mapstructure:"-"`
}

const (
	DefaultConfigPath    = "exerlog.yml"
	DefaultEnvFile       = ".env"
	DefaultAPIHost       = "0.0.0.0"
	DefaultAPIPort       = 3000
	DefaultDBDriver      = DriverMemory
	DefaultDBPath        = ":memory:"
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 100
	DefaultLogMaxBackups = 5
	DefaultLogMaxAgeDays = 14

	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// Load reads configuration from an optional YAML file and the environment.
// An explicit configPath must exist; the default one may be absent.
func Load(configPath string) (*Config, error) {
	// A missing .env is normal outside development
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
	}

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("api_host", DefaultAPIHost)
	v.SetDefault("api_port", DefaultAPIPort)
	v.SetDefault("db_driver", DefaultDBDriver)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("static_dir", "")
	v.SetDefault("swagger_enabled", true)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log_max_backups", DefaultLogMaxBackups)
	v.SetDefault("log_max_age_days", DefaultLogMaxAgeDays)

	// Allow environment variable overrides, e.g. EXERLOG_DB_DRIVER
	v.SetEnvPrefix("EXERLOG")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// PORT is what most hosting platforms set
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.APIPort = p
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.APIPort < 0 || c.APIPort > 65535 {
		return fmt.Errorf("api_port must be between 0 and 65535")
	}

	switch c.DBDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("db_path is required when db_driver is '%s'", DriverSQLite)
		}
	default:
		return fmt.Errorf("db_driver must be '%s' or '%s'", DriverMemory, DriverSQLite)
	}

	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("log_level must be one of: %s", strings.Join(validLogLevels, ", "))
	}

	// Validate static directory exists if provided
	if c.StaticDir != "" {
		if _, err := os.Stat(c.StaticDir); os.IsNotExist(err) {
			return fmt.Errorf("static_dir does not exist: %s", c.StaticDir)
		}
	}

	return nil
}

// Addr returns the host:port the API listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("EXERLOG_DEV_MODE") == "1"
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
