// Package cache provides the byte caches used during a session.
//
// Entries live for the lifetime of the process at most; nothing is written to
// disk. Keys are built by a [Keyer] so every component addresses the cache the
// same way.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value stored under key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// nullCache never stores anything. It backs --no-cache and any component
// constructed without a cache.
type nullCache struct{}

// NewNullCache returns a cache on which every Get misses.
func NewNullCache() Cache { return nullCache{} }

func (nullCache) Get(context.Context, string) ([]byte, bool, error)          { return nil, false, nil }
func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nullCache) Delete(context.Context, string) error                     { return nil }
func (nullCache) Close() error                                             { return nil }
