package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/infofill/internal/config"
	"github.com/jonathan/infofill/internal/observability"
	"github.com/jonathan/infofill/internal/profile"
	"github.com/jonathan/infofill/internal/storage"
	"github.com/jonathan/infofill/internal/templates"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app bundles the stores a command works against.
type app struct {
	cfg       config.Config
	kv        storage.Store
	profile   *profile.Store
	templates *templates.Store
	logger    zerolog.Logger
	printer   *observability.Printer
}

// resolveConfig merges flags, the config file, the environment and defaults,
// in that order of precedence.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		Store:       rootStore,
		DataDir:     rootDataDir,
		DatabaseURL: rootDatabaseURL,
		MySQLDSN:    rootMySQLDSN,
		RedisAddr:   rootRedisAddr,
		LogLevel:    rootLogLevel,
		Verbose:     rootVerbose,
	}

	merged := flags
	if rootConfigFile != "" {
		fileCfg, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
		merged.Verbose = merged.Verbose || fileCfg.Verbose
	}
	env := config.FromEnv()
	merged = merged.MergeWithDefaults(env)
	merged = merged.MergeWithDefaults(config.Defaults())

	if merged.Verbose {
		merged.LogLevel = zerolog.LevelDebugValue
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openApp resolves configuration, opens the storage backend and loads both
// stores. Callers must Close the returned app.
func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, false)
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	logger.Debug().Str("store", cfg.Store).Str("data_dir", cfg.DataDir).Bool("sealed", cfg.Passphrase != "").Msg("storage opened")

	profiles, err := profile.Load(ctx, kv, logger)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	library, err := templates.Load(ctx, kv, logger)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	return &app{
		cfg:       cfg,
		kv:        kv,
		profile:   profiles,
		templates: library,
		logger:    logger,
		printer:   observability.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(ctx, a)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
