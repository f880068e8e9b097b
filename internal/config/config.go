// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/infofill/internal/storage"
	"github.com/rs/zerolog"
)

// Environment variables read by FromEnv.
const (
	EnvStore         = "INFOFILL_STORE"
	EnvDataDir       = "INFOFILL_DATA_DIR"
	EnvDatabaseURL   = "DATABASE_URL"
	EnvMySQLDSN      = "MYSQL_DSN"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvPassphrase    = "INFOFILL_PASSPHRASE"
	EnvLogLevel      = "INFOFILL_LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	Store         string `json:"store,omitempty"`          // Backend: file, postgres, mysql, redis or memory
	DataDir       string `json:"data_dir,omitempty"`       // Directory for the file backend
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	MySQLDSN      string `json:"mysql_dsn,omitempty"`      // MySQL data source name
	RedisAddr     string `json:"redis_addr,omitempty"`     // host:port of the Redis server
	RedisPassword string `json:"redis_password,omitempty"` // Redis AUTH password
	RedisDB       int    `json:"redis_db,omitempty"`       // Redis logical database
	Passphrase    string `json:"passphrase,omitempty"`     // Seals stored blobs when set

	// Behavior
	LogLevel string `json:"log_level,omitempty"` // zerolog level name
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	dir := ".infofill"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".infofill")
	}
	return Config{
		Store:    storage.BackendFile,
		DataDir:  dir,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Callers load
// .env files beforehand.
func FromEnv() Config {
	return Config{
		Store:         os.Getenv(EnvStore),
		DataDir:       os.Getenv(EnvDataDir),
		DatabaseURL:   os.Getenv(EnvDatabaseURL),
		MySQLDSN:      os.Getenv(EnvMySQLDSN),
		RedisAddr:     os.Getenv(EnvRedisAddr),
		RedisPassword: os.Getenv(EnvRedisPassword),
		Passphrase:    os.Getenv(EnvPassphrase),
		LogLevel:      os.Getenv(EnvLogLevel),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Store {
	case "", storage.BackendFile, storage.BackendMemory:
	case storage.BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	case storage.BackendMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("config error: 'mysql_dsn' is required for the mysql store")
		}
	case storage.BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("config error: 'redis_addr' is required for the redis store")
		}
	default:
		return fmt.Errorf("config error: unknown store %q", c.Store)
	}

	if c.RedisDB < 0 {
		return fmt.Errorf("config error: 'redis_db' must be non-negative")
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: invalid log_level %q", c.LogLevel)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// It is applied in precedence order: flags, then config file, then environment,
// then Defaults().
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MySQLDSN == "" {
		result.MySQLDSN = defaults.MySQLDSN
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.RedisPassword == "" {
		result.RedisPassword = defaults.RedisPassword
	}
	if result.RedisDB == 0 {
		result.RedisDB = defaults.RedisDB
	}
	if result.Passphrase == "" {
		result.Passphrase = defaults.Passphrase
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// StorageOptions converts the configuration into storage.Open options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     c.Store,
		DataDir:     c.DataDir,
		DatabaseURL: c.DatabaseURL,
		MySQLDSN:    c.MySQLDSN,
		Redis: storage.RedisOptions{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		},
		Passphrase: c.Passphrase,
	}
}
