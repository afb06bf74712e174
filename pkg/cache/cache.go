// Package cache provides byte-level caching for rendered chart artifacts.
//
// Backends implement [Cache]:
//   - [NullCache]: no-op, caching disabled
//   - [MemoryCache]: in-process map with expiry, used by the HTTP server
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for multi-instance deployments
//
// Keys are built by a [Keyer] so every stage of the pipeline agrees on the
// layout of cache keys. [ScopedKeyer] prefixes keys for namespace isolation.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Default time-to-live values per entry kind.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLChart    = 24 * time.Hour
)

// Cache stores opaque byte payloads with an optional time-to-live.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// ChartKey identifies a validated chart document.
	ChartKey(docHash string) string
	// ArtifactKey identifies a rendered output of a chart document.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every render option that changes output bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	Indent     bool    `json:"indent,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ChartKey(docHash string) string {
	return fmt.Sprintf("chart:%s", docHash)
}

func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

var _ Keyer = DefaultKeyer{}
