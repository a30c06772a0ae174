package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Lookup when the key is not present.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the explicit cache-aside contract used around repository calls.
// Entries are grouped into namespaces (one per entity collection) and every
// write path evicts the whole namespace rather than individual keys.
type Cache interface {
	// Lookup returns the cached value for key within namespace, or
	// ErrCacheMiss when absent.
	Lookup(ctx context.Context, namespace, key string) ([]byte, error)

	// Store caches value under key within namespace for ttl.
	Store(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error

	// InvalidateAll evicts every entry of the namespace.
	InvalidateAll(ctx context.Context, namespace string) error
}

// Noop is a Cache that never hits. Used when no cache backend is configured
// and in tests.
type Noop struct{}

func (Noop) Lookup(ctx context.Context, namespace, key string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (Noop) Store(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (Noop) InvalidateAll(ctx context.Context, namespace string) error {
	return nil
}
