package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/infofill/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"store": "redis",
		"redis_addr": "localhost:6379",
		"redis_db": 2,
		"log_level": "debug",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config", cfg: Config{}},
		{name: "file store", cfg: Config{Store: "file", DataDir: "/tmp/x"}},
		{name: "postgres with url", cfg: Config{Store: "postgres", DatabaseURL: "postgres://localhost/db"}},
		{name: "postgres without url", cfg: Config{Store: "postgres"}, wantErr: "database_url"},
		{name: "mysql without dsn", cfg: Config{Store: "mysql"}, wantErr: "mysql_dsn"},
		{name: "redis without addr", cfg: Config{Store: "redis"}, wantErr: "redis_addr"},
		{name: "unknown store", cfg: Config{Store: "s3"}, wantErr: "unknown store"},
		{name: "negative redis db", cfg: Config{RedisDB: -1}, wantErr: "non-negative"},
		{name: "bad log level", cfg: Config{LogLevel: "loud"}, wantErr: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Store:   "postgres",
		DataDir: "",
		Verbose: true,
	}
	defaults := Config{
		Store:       "file",
		DataDir:     "/data",
		DatabaseURL: "postgres://localhost/db",
		LogLevel:    "info",
	}

	result := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "postgres", result.Store, "set values win")
	assert.Equal(t, "/data", result.DataDir)
	assert.Equal(t, "postgres://localhost/db", result.DatabaseURL)
	assert.Equal(t, "info", result.LogLevel)
	assert.True(t, result.Verbose)
	assert.Equal(t, "", cfg.DataDir, "receiver is not modified")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvStore, "redis")
	t.Setenv(EnvRedisAddr, "cache:6379")
	t.Setenv(EnvPassphrase, "secret")
	t.Setenv(EnvLogLevel, "warn")

	cfg := FromEnv()
	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "secret", cfg.Passphrase)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, storage.BackendFile, d.Store)
	assert.NotEmpty(t, d.DataDir)
	assert.Equal(t, "info", d.LogLevel)
	assert.NoError(t, d.Validate())
}

func TestStorageOptions(t *testing.T) {
	cfg := Config{
		Store:         "redis",
		RedisAddr:     "localhost:6379",
		RedisPassword: "pw",
		RedisDB:       3,
		Passphrase:    "secret",
	}
	opts := cfg.StorageOptions()
	assert.Equal(t, storage.BackendRedis, opts.Backend)
	assert.Equal(t, "localhost:6379", opts.Redis.Addr)
	assert.Equal(t, "pw", opts.Redis.Password)
	assert.Equal(t, 3, opts.Redis.DB)
	assert.Equal(t, "secret", opts.Passphrase)
}
