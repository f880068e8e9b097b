// Package storage provides the key-value persistence layer behind the profile and template stores.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store persists opaque blobs under string keys. Values must survive a
// process restart for every backend except Memory.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
