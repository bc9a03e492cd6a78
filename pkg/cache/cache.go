// Package cache provides caching for conversion results and rendered
// artifacts.
//
// Two backends are available: [FileCache] for CLI usage (entries stored
// under a directory, typically ~/.cache/brepgraph) and [RedisCache] for the
// API server. [NullCache] disables caching entirely.
//
// Keys are generated through the [Keyer] interface so that all entry points
// agree on the key schema. The default schema hashes the shape document's
// content together with any options that affect the output, which makes
// cached graphs safe to share between the CLI and the server.
package cache

import (
	"context"
	"time"
)

// =============================================================================
// Cache Interface
// =============================================================================

// Cache is the storage interface shared by all backends.
//
// Get reports a miss with (nil, false, nil); errors are reserved for backend
// failures. A zero TTL on Set stores the entry without expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default TTLs per entry kind. Graphs derive deterministically from their
// document, so they effectively never go stale; the TTLs bound disk and
// Redis growth rather than freshness.
const (
	// TTLGraph is the lifetime of cached conversion results.
	TTLGraph = 30 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// =============================================================================
// Key Generation
// =============================================================================

// ArtifactKeyOpts captures the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Labels bool   `json:"labels"`
}

// Keyer generates cache keys. Implementations must be deterministic: the
// same inputs always produce the same key.
type Keyer interface {
	// GraphKey returns the key for a conversion result, keyed by the
	// content hash of the source shape document.
	GraphKey(docHash string) string

	// ArtifactKey returns the key for a rendered artifact, keyed by the
	// content hash of the graph it renders.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer implements the standard key schema.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a conversion result.
func (k *DefaultKeyer) GraphKey(docHash string) string {
	return hashKey("graph", docHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
