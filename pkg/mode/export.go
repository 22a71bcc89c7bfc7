package mode

import "github.com/mlenz/regionmap/pkg/region"

// Export re-expresses a value map in the shape the host expects for cfg.
//
// The returned value depends on the mode:
//   - single: the active region id as a string, or nil if none is active
//   - multiple: the sorted slice of active region ids
//   - count, cycle, display: the full count map, unchanged
//
// The result is JSON-serializable and is what the host adapter and CLI hand
// back across the process boundary.
func Export(cfg Config, values region.ValueMap) any {
	switch cfg.(type) {
	case Single:
		active := values.Active()
		if len(active) == 0 {
			return nil
		}
		return active[0]
	case Multiple:
		return values.Active()
	default:
		return values.Clone()
	}
}
