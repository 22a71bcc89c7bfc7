package style

import "testing"

func TestPaintString(t *testing.T) {
	if got := Color("#ff0000").String(); got != "#ff0000" {
		t.Errorf("String() = %q, want #ff0000", got)
	}
	if got := NoPaint().String(); got != "none" {
		t.Errorf("String() = %q, want none", got)
	}
}

func TestValueEval(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		ancestor float64
		want     float64
	}{
		{"literal ignores ancestor", Lit(3), 99, 3},
		{"add", Rel(OpAdd, 0.5), 1, 1.5},
		{"subtract", Rel(OpSub, 0.25), 1, 0.75},
		{"multiply", Rel(OpMul, 2), 1.5, 3},
		{"divide", Rel(OpDiv, 2), 3, 1.5},
		{"divide by zero falls back", Rel(OpDiv, 0), 3, 3},
		{"unknown operator falls back", Rel(Op('%'), 2), 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Eval(tt.ancestor); got != tt.want {
				t.Errorf("Eval(%v) = %v, want %v", tt.ancestor, got, tt.want)
			}
		})
	}
}

func TestStyleIsZero(t *testing.T) {
	if !(Style{}).IsZero() {
		t.Error("empty style: IsZero() = false, want true")
	}
	if (Style{StrokeDash: []string{"4 2"}}).IsZero() {
		t.Error("non-empty style: IsZero() = true, want false")
	}
}
