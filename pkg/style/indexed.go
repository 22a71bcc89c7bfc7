package style

import "github.com/mlenz/regionmap/pkg/region"

// Index maps a region count to a sequence index.
//
// With a positive cycleLength the count wraps: (count mod cycleLength) mod
// length. Without one the count clamps: min(count, length-1). A length of
// zero returns -1, meaning the sequence is absent. Negative counts are
// treated as zero.
func Index(length, count, cycleLength int) int {
	if length == 0 {
		return -1
	}
	if count < 0 {
		count = 0
	}
	if cycleLength > 0 {
		return (count % cycleLength) % length
	}
	if count >= length {
		return length - 1
	}
	return count
}

// =============================================================================
// Group-Qualified Indexed Aesthetics
// =============================================================================

// IndexedEntry binds an indexed aesthetic bundle to a region or group name.
type IndexedEntry struct {
	Name  string
	Style Style
}

// IndexedTable is the ordered list of name-qualified indexed aesthetics.
type IndexedTable []IndexedEntry

// entry returns the bundle declared for name.
func (t IndexedTable) entry(name string) (Style, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Style, true
		}
	}
	return Style{}, false
}

// For resolves the indexed bundle for a region: the region's own id entry if
// present, otherwise the entry of the first declared group containing the
// region. No match means no indexed override applies and the region falls
// through the normal chain.
func (t IndexedTable) For(id string, groups region.Groups) (Style, bool) {
	if s, ok := t.entry(id); ok {
		return s, true
	}
	for _, g := range groups {
		if !g.Contains(id) {
			continue
		}
		if s, ok := t.entry(g.Name); ok {
			return s, true
		}
	}
	return Style{}, false
}
