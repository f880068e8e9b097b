package storage

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMySQL    = "mysql"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend     string
	DataDir     string
	DatabaseURL string
	MySQLDSN    string
	Redis       RedisOptions
	Passphrase  string
}

// Open builds the Store described by opts. A non-empty passphrase wraps the
// backend in a Sealed store.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)

	switch opts.Backend {
	case BackendFile, "":
		store, err = NewFile(opts.DataDir)
	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("database URL is required for the %s backend", BackendPostgres)
		}
		store, err = ConnectPostgres(ctx, opts.DatabaseURL)
	case BackendMySQL:
		if opts.MySQLDSN == "" {
			return nil, fmt.Errorf("DSN is required for the %s backend", BackendMySQL)
		}
		store, err = ConnectMySQL(ctx, opts.MySQLDSN)
	case BackendRedis:
		store, err = ConnectRedis(ctx, opts.Redis)
	case BackendMemory:
		store = NewMemory()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	if opts.Passphrase == "" {
		return store, nil
	}
	sealed, err := NewSealed(store, opts.Passphrase)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return sealed, nil
}
