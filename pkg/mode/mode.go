// Package mode implements the interaction state machine for region maps.
//
// A mode governs how a click mutates per-region counts. Five modes exist:
//
//   - single: exactly one region active at a time
//   - multiple: independent toggles, optionally capped
//   - count: unbounded increment, optionally wrapping
//   - cycle: increment wrapping at a fixed length
//   - display: non-interactive, clicks never mutate state
//
// Apply is pure and total: it never mutates its input and always returns a
// fresh, normalized value map (zero counts dropped).
//
// # Cap semantics in multiple mode
//
// With MaxSelection == 1 a click on a new region replaces the sole active
// one, acting like single mode. With MaxSelection > 1 a click that would
// exceed the cap is a silent no-op. The asymmetry is intentional: replacing
// an arbitrary member of a multi-selection would surprise users, replacing
// the only member cannot.
package mode

import (
	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/region"
)

// Mode names, used in map definitions and CLI output.
const (
	NameSingle   = "single"
	NameMultiple = "multiple"
	NameCount    = "count"
	NameCycle    = "cycle"
	NameDisplay  = "display"
)

// Config is the sealed interaction mode configuration.
// Exactly five implementations exist: Single, Multiple, Count, Cycle, and
// Display. Each variant carries only the fields its mode uses, so invalid
// combinations (a cycle length on single mode, say) cannot be represented.
type Config interface {
	// Name returns the mode name.
	Name() string

	// Validate checks mode-specific constraints.
	Validate() error

	// apply processes a click on target and returns the new value map.
	apply(current region.ValueMap, target string) region.ValueMap
}

// Apply processes a click on target under cfg and returns the new value map.
// It is pure: current is never mutated, and the result contains only
// positive counts. A nil current is treated as an empty map.
func Apply(cfg Config, current region.ValueMap, target string) region.ValueMap {
	return cfg.apply(current, target)
}

// =============================================================================
// Single - Exclusive Selection
// =============================================================================

// Single allows at most one active region. A click activates the target and
// deactivates everything else; it is an exclusive replace, not a toggle
// accumulation. With AllowDeselect, clicking the active region clears it.
type Single struct {
	AllowDeselect bool
}

func (Single) Name() string    { return NameSingle }
func (Single) Validate() error { return nil }

func (s Single) apply(current region.ValueMap, target string) region.ValueMap {
	if s.AllowDeselect && current.Selected(target) {
		return region.ValueMap{}
	}
	return region.ValueMap{target: 1}
}

// =============================================================================
// Multiple - Capped Toggle Set
// =============================================================================

// Multiple toggles regions independently between counts 0 and 1.
// MaxSelection caps the active set size; zero means unbounded.
type Multiple struct {
	MaxSelection int
}

func (Multiple) Name() string { return NameMultiple }

func (m Multiple) Validate() error {
	if m.MaxSelection < 0 {
		return errors.New(errors.ErrCodeInvalidMode, "multiple mode: max_selection must be >= 0, got %d", m.MaxSelection)
	}
	return nil
}

func (m Multiple) apply(current region.ValueMap, target string) region.ValueMap {
	out := current.Clone()

	// Deactivating is always allowed.
	if out.Selected(target) {
		delete(out, target)
		return out
	}

	if m.MaxSelection > 0 && len(out.Active()) >= m.MaxSelection {
		if m.MaxSelection == 1 {
			// Single-like replace: swap the sole active region for the target.
			return region.ValueMap{target: 1}
		}
		// Cap > 1: silent no-op rather than evicting an arbitrary member.
		return out
	}

	out[target] = 1
	return out
}

// =============================================================================
// Count - Unbounded Increment
// =============================================================================

// Count increments the target's count by one per click, unbounded.
// A positive Cycle wraps the count into [0, Cycle-1] instead.
type Count struct {
	Cycle int
}

func (Count) Name() string { return NameCount }

func (c Count) Validate() error {
	if c.Cycle < 0 {
		return errors.New(errors.ErrCodeInvalidMode, "count mode: cycle must be >= 0, got %d", c.Cycle)
	}
	return nil
}

func (c Count) apply(current region.ValueMap, target string) region.ValueMap {
	out := current.Clone()
	n := out.Count(target) + 1
	if c.Cycle > 0 {
		n %= c.Cycle
	}
	if n == 0 {
		delete(out, target)
	} else {
		out[target] = n
	}
	return out
}

// =============================================================================
// Cycle - Wrapping Increment
// =============================================================================

// Cycle increments the target's count modulo N. Counts stay in [0, N-1].
// N must be at least 1.
type Cycle struct {
	N int
}

func (Cycle) Name() string { return NameCycle }

func (c Cycle) Validate() error {
	if c.N < 1 {
		return errors.New(errors.ErrCodeInvalidMode, "cycle mode: n must be >= 1, got %d", c.N)
	}
	return nil
}

func (c Cycle) apply(current region.ValueMap, target string) region.ValueMap {
	return Count{Cycle: c.N}.apply(current, target)
}

// =============================================================================
// Display - Non-Interactive
// =============================================================================

// Display never mutates state. Clicks are only forwarded to the host as
// notifications; the state machine is a pass-through.
type Display struct{}

func (Display) Name() string    { return NameDisplay }
func (Display) Validate() error { return nil }

func (Display) apply(current region.ValueMap, _ string) region.ValueMap {
	return current.Clone()
}

// =============================================================================
// Parsing
// =============================================================================

// Params carries the loosely-typed mode fields of a map definition before
// they are narrowed into a Config variant.
type Params struct {
	Type          string
	AllowDeselect *bool
	MaxSelection  *int
	N             *int
}

// New narrows Params into the matching Config variant. Fields that do not
// belong to the named mode are rejected, so invalid combinations are caught
// at load time instead of surviving by convention.
func New(p Params) (Config, error) {
	reject := func(field string) error {
		return errors.New(errors.ErrCodeInvalidMode, "%s mode does not accept %s", p.Type, field)
	}

	var cfg Config
	switch p.Type {
	case NameSingle:
		if p.MaxSelection != nil {
			return nil, reject("max_selection")
		}
		if p.N != nil {
			return nil, reject("n")
		}
		s := Single{}
		if p.AllowDeselect != nil {
			s.AllowDeselect = *p.AllowDeselect
		}
		cfg = s
	case NameMultiple:
		if p.AllowDeselect != nil {
			return nil, reject("allow_deselect")
		}
		if p.N != nil {
			return nil, reject("n")
		}
		m := Multiple{}
		if p.MaxSelection != nil {
			m.MaxSelection = *p.MaxSelection
		}
		cfg = m
	case NameCount:
		if p.AllowDeselect != nil {
			return nil, reject("allow_deselect")
		}
		if p.MaxSelection != nil {
			return nil, reject("max_selection")
		}
		c := Count{}
		if p.N != nil {
			c.Cycle = *p.N
		}
		cfg = c
	case NameCycle:
		if p.AllowDeselect != nil {
			return nil, reject("allow_deselect")
		}
		if p.MaxSelection != nil {
			return nil, reject("max_selection")
		}
		if p.N == nil {
			return nil, errors.New(errors.ErrCodeInvalidMode, "cycle mode requires n")
		}
		cfg = Cycle{N: *p.N}
	case NameDisplay:
		if p.AllowDeselect != nil || p.MaxSelection != nil || p.N != nil {
			return nil, errors.New(errors.ErrCodeInvalidMode, "display mode does not accept options")
		}
		cfg = Display{}
	case "":
		return nil, errors.New(errors.ErrCodeInvalidMode, "mode type is required")
	default:
		return nil, errors.New(errors.ErrCodeInvalidMode, "unknown mode: %q (must be one of: single, multiple, count, cycle, display)", p.Type)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
