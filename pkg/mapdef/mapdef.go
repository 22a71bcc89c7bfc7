// Package mapdef loads and validates region map definitions.
//
// A map definition is the immutable configuration of one map instance: its
// regions (with opaque SVG path data), ordered group declarations, the
// interaction mode, the aesthetic layers, name-qualified indexed aesthetics,
// tier assignments, and optional initial values.
//
// Definitions are authored in TOML:
//
//	name = "germany"
//	view_box = "0 0 600 800"
//
//	[mode]
//	type = "multiple"
//	max_selection = 2
//
//	[[region]]
//	id = "by"
//	label = "Bavaria"
//	path = "M10 10 L20 20 Z"
//
//	[[group]]
//	name = "south"
//	members = ["by", "bw"]
//	[group.style]
//	fill_color = "#fde"
//
//	[style.base]
//	fill_color = "#e8e8e8"
//	[style.selected]
//	fill_color = "#3388ff"
//
//	[tiers]
//	overlay = ["south"]
package mapdef

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/layers"
	"github.com/mlenz/regionmap/pkg/mode"
	"github.com/mlenz/regionmap/pkg/region"
	"github.com/mlenz/regionmap/pkg/style"
)

// GroupStyle is a per-group aesthetic override, kept in group declaration
// order so overlapping overrides apply later-declared last.
type GroupStyle struct {
	Name  string
	Style style.Style
}

// Def is a fully loaded, validated map definition. It is immutable per
// render pass: the engine reads it and never writes to it.
type Def struct {
	Name    string
	ViewBox string

	Mode    mode.Config
	Regions []region.Region
	Groups  region.Groups

	Base          style.Style
	Selected      style.Style
	Hover         style.Style
	HoverDisabled bool
	Annotation    style.Style

	GroupStyles []GroupStyle
	Indexed     style.IndexedTable
	Tiers       layers.Config

	// Values are the optional initial counts.
	Values region.ValueMap
}

// RegionIDs returns the region ids in declaration order.
func (d *Def) RegionIDs() []string {
	ids := make([]string, len(d.Regions))
	for i, r := range d.Regions {
		ids[i] = r.ID
	}
	return ids
}

// Region returns the region with the given id.
func (d *Def) Region(id string) (region.Region, bool) {
	for _, r := range d.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return region.Region{}, false
}

// CycleLength returns the cycle length that drives indexed sequence
// selection: the wrap length for cycle-type modes, zero (clamp semantics)
// for everything else.
func (d *Def) CycleLength() int {
	switch m := d.Mode.(type) {
	case mode.Cycle:
		return m.N
	case mode.Count:
		return m.Cycle
	default:
		return 0
	}
}

// GroupStylesFor returns the aesthetic overrides of the groups containing
// id, in group declaration order.
func (d *Def) GroupStylesFor(id string) []style.Style {
	var out []style.Style
	for _, gs := range d.GroupStyles {
		g, ok := d.Groups.Get(gs.Name)
		if !ok || !g.Contains(id) {
			continue
		}
		out = append(out, gs.Style)
	}
	return out
}

// Validate checks structural constraints: valid unique region ids, valid
// group names, and a well-formed mode. Group members referencing unknown
// regions are not an error; unknown names silently contribute nothing at
// resolution time.
func (d *Def) Validate() error {
	if d.Name == "" {
		return errors.New(errors.ErrCodeInvalidMap, "map name is required")
	}
	if len(d.Regions) == 0 {
		return errors.New(errors.ErrCodeInvalidMap, "map %q declares no regions", d.Name)
	}

	seen := make(map[string]bool, len(d.Regions))
	for _, r := range d.Regions {
		if err := errors.ValidateRegionID(r.ID); err != nil {
			return err
		}
		if seen[r.ID] {
			return errors.New(errors.ErrCodeInvalidMap, "duplicate region id: %q", r.ID)
		}
		seen[r.ID] = true
	}

	for _, g := range d.Groups {
		if err := errors.ValidateGroupName(g.Name); err != nil {
			return err
		}
	}

	if d.Mode == nil {
		return errors.New(errors.ErrCodeInvalidMap, "map %q declares no mode", d.Name)
	}
	return d.Mode.Validate()
}

// =============================================================================
// TOML Loading
// =============================================================================

// fileDef mirrors the TOML document structure. Aesthetic sections decode as
// loose field maps and are narrowed through style.Parse afterwards.
type fileDef struct {
	Name    string         `toml:"name"`
	ViewBox string         `toml:"view_box"`
	Mode    fileMode       `toml:"mode"`
	Regions []fileRegion   `toml:"region"`
	Groups  []fileGroup    `toml:"group"`
	Style   fileStyle      `toml:"style"`
	Indexed []fileIndexed  `toml:"indexed"`
	Tiers   layers.Config  `toml:"tiers"`
	Values  map[string]int `toml:"values"`
}

type fileMode struct {
	Type          string `toml:"type"`
	AllowDeselect *bool  `toml:"allow_deselect"`
	MaxSelection  *int   `toml:"max_selection"`
	N             *int   `toml:"n"`
}

type fileRegion struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

type fileGroup struct {
	Name    string         `toml:"name"`
	Members []string       `toml:"members"`
	Style   map[string]any `toml:"style"`
}

type fileStyle struct {
	Base          map[string]any `toml:"base"`
	Selected      map[string]any `toml:"selected"`
	Hover         map[string]any `toml:"hover"`
	HoverDisabled bool           `toml:"hover_disabled"`
	Annotation    map[string]any `toml:"annotation"`
}

type fileIndexed struct {
	Name  string         `toml:"name"`
	Style map[string]any `toml:"style"`
}

// ReadFile reads and validates a TOML map definition from a file.
func ReadFile(path string) (*Def, error) {
	if err := errors.ValidateMapPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "map definition %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes and validates a TOML map definition from a reader.
func Read(r io.Reader) (*Def, error) {
	var fd fileDef
	if _, err := toml.NewDecoder(r).Decode(&fd); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "decode map definition")
	}
	return fromFile(fd)
}

func fromFile(fd fileDef) (*Def, error) {
	d := &Def{
		Name:    fd.Name,
		ViewBox: fd.ViewBox,
		Tiers:   fd.Tiers,
		Values:  region.ValueMap(fd.Values).Clone(),
	}

	cfg, err := mode.New(mode.Params{
		Type:          fd.Mode.Type,
		AllowDeselect: fd.Mode.AllowDeselect,
		MaxSelection:  fd.Mode.MaxSelection,
		N:             fd.Mode.N,
	})
	if err != nil {
		return nil, err
	}
	d.Mode = cfg

	d.Regions = make([]region.Region, len(fd.Regions))
	for i, r := range fd.Regions {
		d.Regions[i] = region.Region{ID: r.ID, Label: r.Label, Path: r.Path}
	}

	for _, g := range fd.Groups {
		d.Groups = append(d.Groups, region.Group{Name: g.Name, Members: g.Members})
		if len(g.Style) > 0 {
			s, err := style.Parse(g.Style)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "group %q style", g.Name)
			}
			d.GroupStyles = append(d.GroupStyles, GroupStyle{Name: g.Name, Style: s})
		}
	}

	sections := []struct {
		name   string
		fields map[string]any
		dst    *style.Style
	}{
		{"base", fd.Style.Base, &d.Base},
		{"selected", fd.Style.Selected, &d.Selected},
		{"hover", fd.Style.Hover, &d.Hover},
		{"annotation", fd.Style.Annotation, &d.Annotation},
	}
	for _, sec := range sections {
		if len(sec.fields) == 0 {
			continue
		}
		s, err := style.Parse(sec.fields)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "style.%s", sec.name)
		}
		*sec.dst = s
	}
	d.HoverDisabled = fd.Style.HoverDisabled

	for _, ix := range fd.Indexed {
		if ix.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidMap, "indexed entry without a name")
		}
		s, err := style.Parse(ix.Style)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "indexed %q style", ix.Name)
		}
		d.Indexed = append(d.Indexed, style.IndexedEntry{Name: ix.Name, Style: s})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
