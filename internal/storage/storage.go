package storage

import (
	"context"
	"errors"
)

// Store is the durable key-value slot the serialized cart lives in. One
// application-scoped key holds the whole cart; every save rewrites it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by Get when no value has been stored under the key.
var ErrNotFound = errors.New("storage: key not found")
