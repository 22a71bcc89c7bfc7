package mode

import (
	"maps"
	"testing"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/region"
)

func TestSingleApply(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Single
		current region.ValueMap
		target  string
		want    region.ValueMap
	}{
		{
			name:    "select from empty",
			cfg:     Single{},
			current: region.ValueMap{},
			target:  "a",
			want:    region.ValueMap{"a": 1},
		},
		{
			name:    "exclusive replace",
			cfg:     Single{},
			current: region.ValueMap{"a": 1},
			target:  "b",
			want:    region.ValueMap{"b": 1},
		},
		{
			name:    "reclick without deselect keeps selection",
			cfg:     Single{},
			current: region.ValueMap{"a": 1},
			target:  "a",
			want:    region.ValueMap{"a": 1},
		},
		{
			name:    "reclick with deselect clears all",
			cfg:     Single{AllowDeselect: true},
			current: region.ValueMap{"a": 1},
			target:  "a",
			want:    region.ValueMap{},
		},
		{
			name:    "replace stale multi-state",
			cfg:     Single{},
			current: region.ValueMap{"a": 1, "b": 1},
			target:  "c",
			want:    region.ValueMap{"c": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.cfg, tt.current, tt.target)
			if !maps.Equal(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultipleApply(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Multiple
		current region.ValueMap
		target  string
		want    region.ValueMap
	}{
		{
			name:    "activate",
			cfg:     Multiple{},
			current: region.ValueMap{},
			target:  "a",
			want:    region.ValueMap{"a": 1},
		},
		{
			name:    "deactivate",
			cfg:     Multiple{},
			current: region.ValueMap{"a": 1, "b": 1},
			target:  "a",
			want:    region.ValueMap{"b": 1},
		},
		{
			name:    "unbounded accumulation",
			cfg:     Multiple{},
			current: region.ValueMap{"a": 1, "b": 1},
			target:  "c",
			want:    region.ValueMap{"a": 1, "b": 1, "c": 1},
		},
		{
			name:    "cap 2 blocks third activation",
			cfg:     Multiple{MaxSelection: 2},
			current: region.ValueMap{"a": 1, "b": 1},
			target:  "c",
			want:    region.ValueMap{"a": 1, "b": 1},
		},
		{
			name:    "cap 2 still allows deactivation",
			cfg:     Multiple{MaxSelection: 2},
			current: region.ValueMap{"a": 1, "b": 1},
			target:  "b",
			want:    region.ValueMap{"a": 1},
		},
		{
			name:    "cap 1 replaces sole selection",
			cfg:     Multiple{MaxSelection: 1},
			current: region.ValueMap{"a": 1},
			target:  "b",
			want:    region.ValueMap{"b": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.cfg, tt.current, tt.target)
			if !maps.Equal(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultipleCapSequence(t *testing.T) {
	// Click a, b, c in order with cap 2: c must be a silent no-op.
	cfg := Multiple{MaxSelection: 2}
	v := region.ValueMap{}

	v = Apply(cfg, v, "a")
	v = Apply(cfg, v, "b")
	v = Apply(cfg, v, "c")

	want := region.ValueMap{"a": 1, "b": 1}
	if !maps.Equal(v, want) {
		t.Errorf("after a,b,c = %v, want %v", v, want)
	}
}

func TestCountApply(t *testing.T) {
	cfg := Count{}
	v := region.ValueMap{"a": 41}

	got := Apply(cfg, v, "a")
	if got.Count("a") != 42 {
		t.Errorf("count = %d, want 42", got.Count("a"))
	}
	if v.Count("a") != 41 {
		t.Errorf("input mutated: count = %d, want 41", v.Count("a"))
	}
}

func TestCountWithCycle(t *testing.T) {
	cfg := Count{Cycle: 3}
	v := region.ValueMap{"a": 2}

	got := Apply(cfg, v, "a")
	if got.Count("a") != 0 {
		t.Errorf("count = %d, want 0 (wrapped)", got.Count("a"))
	}
	if _, present := got["a"]; present {
		t.Error("zero count should be dropped from the map")
	}
}

func TestCycleWrap(t *testing.T) {
	// Three sequential clicks on r1 with n=3 yield counts 1, 2, 0.
	cfg := Cycle{N: 3}
	v := region.ValueMap{}

	want := []int{1, 2, 0}
	for i, w := range want {
		v = Apply(cfg, v, "r1")
		if got := v.Count("r1"); got != w {
			t.Errorf("click %d: count = %d, want %d", i+1, got, w)
		}
	}
}

func TestCycleOne(t *testing.T) {
	// n=1 pins every count at zero.
	cfg := Cycle{N: 1}
	v := Apply(cfg, region.ValueMap{}, "a")
	if v.Count("a") != 0 {
		t.Errorf("count = %d, want 0", v.Count("a"))
	}
}

func TestDisplayApply(t *testing.T) {
	cfg := Display{}
	v := region.ValueMap{"a": 2}

	got := Apply(cfg, v, "b")
	if !maps.Equal(got, v) {
		t.Errorf("Apply() = %v, want unchanged %v", got, v)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"single ok", Single{}, false},
		{"multiple ok", Multiple{MaxSelection: 3}, false},
		{"multiple negative cap", Multiple{MaxSelection: -1}, true},
		{"count ok", Count{}, false},
		{"count negative cycle", Count{Cycle: -2}, true},
		{"cycle ok", Cycle{N: 1}, false},
		{"cycle zero", Cycle{N: 0}, true},
		{"display ok", Display{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidMode) {
				t.Errorf("code = %v, want INVALID_MODE", errors.GetCode(err))
			}
		})
	}
}

func TestNew(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name    string
		params  Params
		want    Config
		wantErr bool
	}{
		{
			name:   "single with deselect",
			params: Params{Type: "single", AllowDeselect: boolPtr(true)},
			want:   Single{AllowDeselect: true},
		},
		{
			name:   "multiple with cap",
			params: Params{Type: "multiple", MaxSelection: intPtr(2)},
			want:   Multiple{MaxSelection: 2},
		},
		{
			name:   "count with cycle length",
			params: Params{Type: "count", N: intPtr(4)},
			want:   Count{Cycle: 4},
		},
		{
			name:   "cycle",
			params: Params{Type: "cycle", N: intPtr(3)},
			want:   Cycle{N: 3},
		},
		{
			name:   "display",
			params: Params{Type: "display"},
			want:   Display{},
		},
		{
			name:    "cycle requires n",
			params:  Params{Type: "cycle"},
			wantErr: true,
		},
		{
			name:    "single rejects n",
			params:  Params{Type: "single", N: intPtr(3)},
			wantErr: true,
		},
		{
			name:    "multiple rejects allow_deselect",
			params:  Params{Type: "multiple", AllowDeselect: boolPtr(true)},
			wantErr: true,
		},
		{
			name:    "display rejects options",
			params:  Params{Type: "display", MaxSelection: intPtr(1)},
			wantErr: true,
		},
		{
			name:    "missing type",
			params:  Params{},
			wantErr: true,
		},
		{
			name:    "unknown type",
			params:  Params{Type: "lasso"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.params)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeInvalidMode) {
					t.Errorf("code = %v, want INVALID_MODE", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got != tt.want {
				t.Errorf("New() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExport(t *testing.T) {
	values := region.ValueMap{"b": 1, "a": 2}

	t.Run("single active", func(t *testing.T) {
		got := Export(Single{}, region.ValueMap{"x": 1})
		if got != "x" {
			t.Errorf("Export = %v, want x", got)
		}
	})

	t.Run("single none", func(t *testing.T) {
		if got := Export(Single{}, region.ValueMap{}); got != nil {
			t.Errorf("Export = %v, want nil", got)
		}
	})

	t.Run("multiple sorted list", func(t *testing.T) {
		got, ok := Export(Multiple{}, values).([]string)
		if !ok {
			t.Fatalf("Export returned %T, want []string", got)
		}
		if len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("Export = %v, want [a b]", got)
		}
	})

	t.Run("count passthrough", func(t *testing.T) {
		got, ok := Export(Count{}, values).(region.ValueMap)
		if !ok {
			t.Fatalf("Export returned %T, want ValueMap", got)
		}
		if !maps.Equal(got, values) {
			t.Errorf("Export = %v, want %v", got, values)
		}
	})

	t.Run("display passthrough", func(t *testing.T) {
		got, ok := Export(Display{}, values).(region.ValueMap)
		if !ok || !maps.Equal(got, values) {
			t.Errorf("Export = %v, want %v", got, values)
		}
	})
}
