package mapdef

import (
	"strings"
	"testing"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/mode"
	"github.com/mlenz/regionmap/pkg/style"
)

const sampleDef = `
name = "germany"
view_box = "0 0 600 800"

[mode]
type = "multiple"
max_selection = 2

[[region]]
id = "by"
label = "Bavaria"
path = "M10 10 L20 20 Z"

[[region]]
id = "bw"
path = "M30 30 L40 40 Z"

[[region]]
id = "sh"

[[group]]
name = "south"
members = ["by", "bw"]
[group.style]
fill_color = "#fde"

[[group]]
name = "coast"
members = ["sh"]

[style.base]
fill_color = "#e8e8e8"
stroke_width = 1.0

[style.selected]
fill_color = "#3388ff"

[style.hover]
stroke_width = "+0.5"

[style.annotation]
fill_color = "none"

[[indexed]]
name = "south"
[indexed.style]
fill_color = ["#fee", "#fcc", "#f99"]

[tiers]
overlay = ["south"]
hidden = ["lakes"]

[values]
by = 1
`

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(sampleDef))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if d.Name != "germany" {
		t.Errorf("Name = %q, want germany", d.Name)
	}
	if d.ViewBox != "0 0 600 800" {
		t.Errorf("ViewBox = %q", d.ViewBox)
	}

	if got, want := d.Mode, (mode.Multiple{MaxSelection: 2}); got != want {
		t.Errorf("Mode = %#v, want %#v", got, want)
	}

	if len(d.Regions) != 3 {
		t.Fatalf("regions = %d, want 3", len(d.Regions))
	}
	if d.Regions[0].Label != "Bavaria" || d.Regions[0].Path == "" {
		t.Errorf("region[0] = %+v", d.Regions[0])
	}

	if len(d.Groups) != 2 || d.Groups[0].Name != "south" || d.Groups[1].Name != "coast" {
		t.Errorf("Groups = %+v, want [south coast] in order", d.Groups)
	}

	if len(d.GroupStyles) != 1 || d.GroupStyles[0].Name != "south" {
		t.Fatalf("GroupStyles = %+v", d.GroupStyles)
	}

	if len(d.Base.FillColor) != 1 || d.Base.FillColor[0] != style.Color("#e8e8e8") {
		t.Errorf("Base.FillColor = %v", d.Base.FillColor)
	}
	if len(d.Hover.StrokeWidth) != 1 || d.Hover.StrokeWidth[0] != style.Rel(style.OpAdd, 0.5) {
		t.Errorf("Hover.StrokeWidth = %v", d.Hover.StrokeWidth)
	}
	if len(d.Annotation.FillColor) != 1 || !d.Annotation.FillColor[0].None {
		t.Errorf("Annotation.FillColor = %v, want no-paint", d.Annotation.FillColor)
	}

	if len(d.Indexed) != 1 || d.Indexed[0].Name != "south" {
		t.Fatalf("Indexed = %+v", d.Indexed)
	}
	if got := len(d.Indexed[0].Style.FillColor); got != 3 {
		t.Errorf("indexed sequence length = %d, want 3", got)
	}

	if len(d.Tiers.Overlay) != 1 || d.Tiers.Overlay[0] != "south" {
		t.Errorf("Tiers.Overlay = %v", d.Tiers.Overlay)
	}

	if d.Values.Count("by") != 1 {
		t.Errorf("initial count(by) = %d, want 1", d.Values.Count("by"))
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "invalid toml",
			input: `name = `,
			code:  errors.ErrCodeInvalidMap,
		},
		{
			name: "missing mode",
			input: `
name = "m"
[[region]]
id = "a"
`,
			code: errors.ErrCodeInvalidMode,
		},
		{
			name: "no regions",
			input: `
name = "m"
[mode]
type = "single"
`,
			code: errors.ErrCodeInvalidMap,
		},
		{
			name: "duplicate region id",
			input: `
name = "m"
[mode]
type = "single"
[[region]]
id = "a"
[[region]]
id = "a"
`,
			code: errors.ErrCodeInvalidMap,
		},
		{
			name: "invalid region id",
			input: `
name = "m"
[mode]
type = "single"
[[region]]
id = "has space"
`,
			code: errors.ErrCodeInvalidRegion,
		},
		{
			name: "stray mode field",
			input: `
name = "m"
[mode]
type = "single"
n = 3
[[region]]
id = "a"
`,
			code: errors.ErrCodeInvalidMode,
		},
		{
			name: "bad style field",
			input: `
name = "m"
[mode]
type = "single"
[[region]]
id = "a"
[style.base]
fill_colour = "#fee"
`,
			code: errors.ErrCodeInvalidMap,
		},
		{
			name: "indexed without name",
			input: `
name = "m"
[mode]
type = "single"
[[region]]
id = "a"
[[indexed]]
[indexed.style]
fill_color = ["#fee"]
`,
			code: errors.ErrCodeInvalidMap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestCycleLength(t *testing.T) {
	tests := []struct {
		name string
		mode mode.Config
		want int
	}{
		{"cycle mode", mode.Cycle{N: 3}, 3},
		{"count with cycle", mode.Count{Cycle: 4}, 4},
		{"count unbounded", mode.Count{}, 0},
		{"single", mode.Single{}, 0},
		{"display", mode.Display{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Def{Mode: tt.mode}
			if got := d.CycleLength(); got != tt.want {
				t.Errorf("CycleLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGroupStylesFor(t *testing.T) {
	d, err := Read(strings.NewReader(sampleDef))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got := d.GroupStylesFor("by"); len(got) != 1 {
		t.Errorf("GroupStylesFor(by) = %d styles, want 1", len(got))
	}
	if got := d.GroupStylesFor("sh"); got != nil {
		t.Errorf("GroupStylesFor(sh) = %v, want nil (coast has no style)", got)
	}
}

func TestRegionLookup(t *testing.T) {
	d, err := Read(strings.NewReader(sampleDef))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	r, ok := d.Region("by")
	if !ok || r.Label != "Bavaria" {
		t.Errorf("Region(by) = %+v, %v", r, ok)
	}
	if _, ok := d.Region("nope"); ok {
		t.Error("Region(nope) found, want missing")
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile("nonexistent.toml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
