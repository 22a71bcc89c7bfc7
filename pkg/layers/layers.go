// Package layers assigns map regions to stacking tiers.
//
// Five mutually exclusive tiers control draw order, from top to bottom:
// annotation, overlay, base, underlay — plus hidden, which suppresses a
// region entirely. A tier configuration lists names per tier; each name
// resolves to a declared group's members, or falls back to the literal name
// as a singleton id. Assignment is total and exclusive: every region lands
// in exactly one tier, and a region matched by several tier lists goes to
// the highest-priority one (hidden > annotation > overlay > underlay).
// Regions matched by no list land in base.
package layers

import (
	"github.com/mlenz/regionmap/pkg/region"
)

// Tier is one of the five stacking tiers.
type Tier string

// Stacking tiers, highest assignment priority first.
const (
	TierHidden     Tier = "hidden"
	TierAnnotation Tier = "annotation"
	TierOverlay    Tier = "overlay"
	TierUnderlay   Tier = "underlay"
	TierBase       Tier = "base"
)

// DrawOrder lists the visible tiers bottom-up, the order a renderer should
// emit them so annotations always paint on top.
var DrawOrder = []Tier{TierUnderlay, TierBase, TierOverlay, TierAnnotation}

// Config lists the names assigned to each non-default tier. Names resolve
// through the group declarations; unknown names fall back to literal ids.
type Config struct {
	Hidden     []string `json:"hidden,omitempty" toml:"hidden"`
	Annotation []string `json:"annotation,omitempty" toml:"annotation"`
	Overlay    []string `json:"overlay,omitempty" toml:"overlay"`
	Underlay   []string `json:"underlay,omitempty" toml:"underlay"`
}

// Assign computes the tier for every region id. The result is total and
// exclusive: each input id maps to exactly one tier. Tier name lists are
// resolved through groups with the singleton fallback; names resolving to
// ids not present in ids are silently ignored.
func Assign(ids []string, groups region.Groups, cfg Config) map[string]Tier {
	out := make(map[string]Tier, len(ids))
	for _, id := range ids {
		out[id] = TierBase
	}

	// Lowest priority first, so higher-priority tiers overwrite.
	assign := func(names []string, tier Tier) {
		for _, name := range names {
			for _, id := range groups.Members(name) {
				if _, known := out[id]; known {
					out[id] = tier
				}
			}
		}
	}
	assign(cfg.Underlay, TierUnderlay)
	assign(cfg.Overlay, TierOverlay)
	assign(cfg.Annotation, TierAnnotation)
	assign(cfg.Hidden, TierHidden)

	return out
}
