// Package cache provides pluggable caching for analysis verdicts and
// rendered artifacts.
//
// Detection responses are expensive (the analysis service scrapes and
// runs models), so the CLI and the dashboard server cache them keyed by
// article URL. Four backends implement the same interface:
//
//   - [FileCache]: per-user directory cache for CLI usage
//   - [RedisCache]: shared cache for the hosted dashboard
//   - [MongoCache]: persistent verdict history with TTL expiry
//   - [NullCache]: disables caching
//
// Keys are built with the helpers in keys.go so all entry points agree
// on the layout of the keyspace.
package cache

import (
	"context"
	"time"
)

// Cache is the backend-agnostic caching interface.
// Implementations must treat a missing key as (nil, false, nil).
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
