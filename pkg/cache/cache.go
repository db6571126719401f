// Package cache stores computed layouts and rendered artifacts.
//
// All backends implement [Cache], a byte-oriented key/value store with
// per-entry expiry:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: JSON entry files under a local directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//
// Keys come from a [Keyer] so that every backend sees the same key layout.
// [ScopedKeyer] adds a prefix, which lets several deployments share one
// Redis database.
package cache

import (
	"context"
	"time"
)

// Default TTLs for cached entries.
const (
	LayoutTTL   = 24 * time.Hour
	ArtifactTTL = 24 * time.Hour
)

// Cache is a key/value store for serialized pipeline results.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is reported as ok == false with
	// a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}
