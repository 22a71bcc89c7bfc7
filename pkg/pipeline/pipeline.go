// Package pipeline orchestrates the regionmap resolution engine.
//
// This package ties the pure engine components together into the two
// operations hosts actually call. By centralizing this logic we ensure CLI,
// TUI, and HTTP host behave identically.
//
// # Architecture
//
// Two operations exist:
//
//  1. Click: feed an interaction event through the mode state machine,
//     producing a new value map.
//  2. Pass: resolve the current value map into one fully concrete
//     {style, tier} pair per region for a renderer to consume.
//
// A Pass runs on every render, not just after interactions: resolution is
// O(regions × style fields) and cheap enough to recompute from scratch each
// time, so nothing is cached between passes.
//
// # Usage
//
//	def, err := mapdef.ReadFile("germany.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(def, logger)
//
//	values := runner.Click(ctx, def.Values, "by")
//	regions := runner.Pass(ctx, values, "")
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mlenz/regionmap/pkg/layers"
	"github.com/mlenz/regionmap/pkg/mapdef"
	"github.com/mlenz/regionmap/pkg/mode"
	"github.com/mlenz/regionmap/pkg/observability"
	"github.com/mlenz/regionmap/pkg/region"
	"github.com/mlenz/regionmap/pkg/style"
)

// RegionRender is the per-region output of a resolution pass: everything a
// renderer needs to draw one region. It is recomputed every pass and
// discarded after consumption.
type RegionRender struct {
	ID       string         `json:"id"`
	Label    string         `json:"label,omitempty"`
	Path     string         `json:"path,omitempty"`
	Count    int            `json:"count"`
	Selected bool           `json:"selected"`
	Hovered  bool           `json:"hovered"`
	Tier     layers.Tier    `json:"tier"`
	Style    style.Resolved `json:"style"`
}

// Runner executes passes and clicks against one map definition.
// It holds no mutable state: the value map is owned by the caller and
// passed in per call, so one Runner can serve concurrent sessions.
type Runner struct {
	def    *mapdef.Def
	logger *log.Logger
}

// NewRunner creates a runner for the given definition. A nil logger
// discards output.
func NewRunner(def *mapdef.Def, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{def: def, logger: logger}
}

// Def returns the runner's map definition.
func (r *Runner) Def() *mapdef.Def { return r.def }

// Click processes a click on target and returns the new value map.
// The input map is never mutated. In display mode the state is returned
// unchanged and the click is only surfaced through hooks and the caller's
// own notification path.
func (r *Runner) Click(ctx context.Context, values region.ValueMap, target string) region.ValueMap {
	observability.Engine().OnClick(ctx, r.def.Name, r.def.Mode.Name(), target)

	out := mode.Apply(r.def.Mode, values, target)
	r.logger.Debug("click applied",
		"map", r.def.Name, "mode", r.def.Mode.Name(), "target", target, "active", len(out.Active()))
	return out
}

// Pass resolves the current state into one RegionRender per region, in
// definition order. hover names the currently hovered region id, or is
// empty when nothing is hovered.
func (r *Runner) Pass(ctx context.Context, values region.ValueMap, hover string) []RegionRender {
	d := r.def
	passID := uuid.NewString()
	start := time.Now()
	observability.Engine().OnPassStart(ctx, d.Name, len(d.Regions))

	tiers := layers.Assign(d.RegionIDs(), d.Groups, d.Tiers)
	cycleLen := d.CycleLength()

	out := make([]RegionRender, len(d.Regions))
	for i, reg := range d.Regions {
		count := values.Count(reg.ID)
		selected := count > 0
		hovered := hover != "" && hover == reg.ID
		tier := tiers[reg.ID]

		chain := r.chainFor(reg.ID, selected, hovered, tier)
		out[i] = RegionRender{
			ID:       reg.ID,
			Label:    reg.Label,
			Path:     reg.Path,
			Count:    count,
			Selected: selected,
			Hovered:  hovered,
			Tier:     tier,
			Style:    style.Resolve(count, cycleLen, chain...),
		}
	}

	elapsed := time.Since(start)
	observability.Engine().OnPassComplete(ctx, d.Name, len(d.Regions), elapsed)
	r.logger.Debug("pass complete",
		"map", d.Name, "pass", passID, "regions", len(out), "elapsed", elapsed.Round(time.Microsecond))
	return out
}

// Export re-expresses a value map the way the host expects it for the
// definition's mode.
func (r *Runner) Export(values region.ValueMap) any {
	return mode.Export(r.def.Mode, values)
}

// chainFor assembles the ordered layer chain for one region:
// base, grouped overrides, indexed override, selected, hover, annotation.
func (r *Runner) chainFor(id string, selected, hovered bool, tier layers.Tier) []style.Style {
	d := r.def

	chain := make([]style.Style, 0, 6)
	chain = append(chain, d.Base)
	chain = append(chain, d.GroupStylesFor(id)...)

	if ix, ok := d.Indexed.For(id, d.Groups); ok {
		chain = append(chain, ix)
	}
	if selected {
		chain = append(chain, d.Selected)
	}
	if hovered && !d.HoverDisabled {
		hoverLayer := d.Hover
		if hoverLayer.IsZero() {
			hoverLayer = style.DefaultHover()
		}
		chain = append(chain, hoverLayer)
	}
	if tier == layers.TierAnnotation {
		chain = append(chain, d.Annotation)
	}
	return chain
}
