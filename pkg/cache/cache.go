// Package cache provides caching for derived plan artifacts.
//
// Rendering assembly diagrams shells out to Graphviz and librsvg, which
// dominates request latency in the preview server. Artifacts are keyed by
// a hash of the plan document plus the render options, so any plan
// mutation invalidates them naturally and entries never go stale.
//
// # Backends
//
//   - [FileCache]: directory-based cache for CLI usage
//   - [RedisCache]: shared cache for the preview server
//   - [NullCache]: caching disabled
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	keyer := cache.NewDefaultKeyer()
//
//	key := keyer.ArtifactKey(cache.Hash(planJSON), cache.ArtifactKeyOpts{Format: "svg"})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//	    return data, nil
//	}
//	// ... render, then:
//	_ = c.Set(ctx, key, svg, 24*time.Hour)
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value from the cache.
	// The second return reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means no
	// expiration; a negative TTL stores an already-expired entry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts captures the render options that shape an artifact.
// Two artifacts of the same plan with different options must never share
// a key.
type ArtifactKeyOpts struct {
	Format   string  // "dot", "svg", "png", "pdf", "dxf"
	Detailed bool    // node labels with areas and group IDs
	Scale    float64 // PNG zoom factor, zero for vector formats
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact of the plan
	// identified by planHash.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
