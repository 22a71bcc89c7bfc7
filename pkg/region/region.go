package region

import "slices"

// =============================================================================
// ValueMap - Per-Region Count State
// =============================================================================

// ValueMap maps region ids to non-negative counts.
// A missing id means count zero. The engine treats a ValueMap as an immutable
// input and returns fresh maps rather than mutating in place, so a single map
// instance can be shared between render passes without locking.
type ValueMap map[string]int

// Count returns the count for id, or zero if the id is absent.
func (v ValueMap) Count(id string) int {
	return v[id]
}

// Selected reports whether id is selected (count > 0).
func (v ValueMap) Selected(id string) bool {
	return v[id] > 0
}

// Active returns the ids with a positive count, sorted for determinism.
func (v ValueMap) Active() []string {
	ids := make([]string, 0, len(v))
	for id, n := range v {
		if n > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Clone returns a normalized copy of the map. Entries with a count of zero
// or less are dropped, matching the "missing id means zero" convention.
func (v ValueMap) Clone() ValueMap {
	out := make(ValueMap, len(v))
	for id, n := range v {
		if n > 0 {
			out[id] = n
		}
	}
	return out
}

// =============================================================================
// Region - Addressable Map Unit
// =============================================================================

// Region describes one addressable unit of a map. The engine core only needs
// the id; Label and Path are carried through for renderers. Path is opaque
// SVG path data supplied by the map definition, never interpreted here.
type Region struct {
	ID    string `json:"id" toml:"id"`
	Label string `json:"label,omitempty" toml:"label,omitempty"`
	Path  string `json:"path,omitempty" toml:"path,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the id.
func (r *Region) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	return r.ID
}

// =============================================================================
// Group - Named Region Set
// =============================================================================

// Group is a named set of region ids declared by external metadata.
type Group struct {
	Name    string   `json:"name" toml:"name"`
	Members []string `json:"members" toml:"members"`
}

// Contains reports whether id is a member of the group.
func (g *Group) Contains(id string) bool {
	return slices.Contains(g.Members, id)
}

// Groups is an ordered list of group declarations.
// Order matters: overlapping grouped overrides apply later-declared last, and
// group-qualified indexed aesthetics resolve to the first declared match.
type Groups []Group

// Get returns the group with the given name.
func (gs Groups) Get(name string) (Group, bool) {
	for _, g := range gs {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// Members resolves a name to region ids. A declared group resolves to its
// member list; an undeclared name falls back to a singleton containing the
// literal name itself. The fallback is silent: a name matching nothing simply
// contributes a single id that may not exist on the map.
func (gs Groups) Members(name string) []string {
	if g, ok := gs.Get(name); ok {
		return g.Members
	}
	return []string{name}
}

// Containing returns the groups that contain id, in declaration order.
func (gs Groups) Containing(id string) []Group {
	var out []Group
	for _, g := range gs {
		if g.Contains(id) {
			out = append(out, g)
		}
	}
	return out
}
