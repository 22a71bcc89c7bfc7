// Package cache provides render-output memoization for hosts.
//
// A resolution pass is deterministic: the same definition, value map, and
// hover always produce the same SVG. Hosts exploit this by caching rendered
// output keyed on a content hash of those inputs, so repeated renders of an
// unchanged session are served without re-resolving.
//
// Two backends are provided: an in-memory cache for serving processes and a
// file-based cache for CLI invocations that span processes. NullCache
// disables caching entirely.
package cache

import (
	"context"
	"time"

	"github.com/mlenz/regionmap/pkg/region"
)

// Cache is the storage interface for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys from render inputs.
type Keyer interface {
	// RenderKey generates a key for a rendered pass. defHash identifies
	// the map definition content, values and hover the session state.
	RenderKey(defHash string, values region.ValueMap, hover string) string
}

// DefaultKeyer is the standard content-hash keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered pass.
func (k *DefaultKeyer) RenderKey(defHash string, values region.ValueMap, hover string) string {
	return hashKey("render", defHash, values, hover)
}
