package cache

import "github.com/mlenz/regionmap/pkg/region"

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// A host serving several maps from one process gives each its own prefix so
// render artifacts never collide across maps.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey generates a prefixed key for a rendered pass.
func (k *ScopedKeyer) RenderKey(defHash string, values region.ValueMap, hover string) string {
	return k.prefix + k.inner.RenderKey(defHash, values, hover)
}
