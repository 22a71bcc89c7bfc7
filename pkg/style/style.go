// Package style implements the aesthetic resolution engine for region maps.
//
// A region's final appearance is computed from an ordered chain of partial
// style layers: built-in defaults, then the base aesthetic, grouped
// overrides, the selected aesthetic, the hover aesthetic, and finally the
// annotation aesthetic. Later layers override earlier ones field by field;
// an absent field inherits the value resolved so far.
//
// Three value forms exist beyond plain literals:
//
//   - Explicit "no paint" on color fields, distinct from absent: it resolves
//     to a concrete "none" and stops inheritance.
//   - Relative expressions on numeric fields, evaluated against the
//     ancestor-resolved value (base stroke width 1 plus a hover layer of
//     "+0.5" resolves to 1.5 on the hovered region).
//   - Indexed sequences on any field, selected by the region's count:
//     wrapping when a cycle length is in play, clamping at the last entry
//     otherwise. A scalar is a one-element sequence and behaves identically
//     under both rules.
//
// Resolution is pure and deterministic: the same chain, count, and cycle
// length always produce an identical Resolved value.
package style

// =============================================================================
// Paint - Color Values
// =============================================================================

// Paint is a fill or stroke paint: either a concrete color or an explicit
// "no paint". The zero Paint is the empty color; layers express absence by
// omitting the field, not with a zero Paint.
type Paint struct {
	None  bool   // Explicit no-paint, renders as "none"
	Color string // Color literal (any SVG paint string)
}

// Color returns a concrete color paint.
func Color(c string) Paint { return Paint{Color: c} }

// NoPaint returns the explicit "no paint" value.
func NoPaint() Paint { return Paint{None: true} }

// IsZero reports whether the paint is absent (neither a color nor an
// explicit no-paint).
func (p Paint) IsZero() bool { return !p.None && p.Color == "" }

// String returns the SVG paint attribute value.
func (p Paint) String() string {
	if p.None {
		return "none"
	}
	return p.Color
}

// =============================================================================
// Value - Literal or Relative Numeric
// =============================================================================

// Op is a relative-expression operator.
type Op byte

// Relative-expression operators.
const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// ValueKind discriminates the two numeric value forms.
type ValueKind int

const (
	// KindLiteral is a concrete number.
	KindLiteral ValueKind = iota
	// KindRelative applies an operator to the ancestor-resolved value.
	KindRelative
)

// Value is a numeric style value: either a literal or a relative expression
// against the ancestor-resolved value of the same property.
type Value struct {
	Kind    ValueKind
	Literal float64
	Op      Op
	Operand float64
}

// Lit returns a literal numeric value.
func Lit(x float64) Value { return Value{Kind: KindLiteral, Literal: x} }

// Rel returns a relative expression value.
func Rel(op Op, operand float64) Value {
	return Value{Kind: KindRelative, Op: op, Operand: operand}
}

// Eval resolves the value against the ancestor-resolved value.
// Malformed relative expressions degrade instead of failing: division by a
// zero operand and unknown operators both yield the ancestor unchanged.
func (v Value) Eval(ancestor float64) float64 {
	if v.Kind == KindLiteral {
		return v.Literal
	}
	switch v.Op {
	case OpAdd:
		return ancestor + v.Operand
	case OpSub:
		return ancestor - v.Operand
	case OpMul:
		return ancestor * v.Operand
	case OpDiv:
		if v.Operand == 0 {
			return ancestor
		}
		return ancestor / v.Operand
	default:
		return ancestor
	}
}

// =============================================================================
// Style - Partial Layer
// =============================================================================

// Style is one partial layer of the resolution chain. Every field is
// independently optional: a nil or empty sequence means absent (inherit).
// A one-element sequence is a uniform scalar; longer sequences are indexed
// by the region's count.
type Style struct {
	FillColor        []Paint
	FillOpacity      []Value
	StrokeColor      []Paint
	StrokeWidth      []Value
	StrokeDash       []string
	NonScalingStroke *bool
}

// IsZero reports whether the layer overrides nothing.
func (s Style) IsZero() bool {
	return len(s.FillColor) == 0 && len(s.FillOpacity) == 0 &&
		len(s.StrokeColor) == 0 && len(s.StrokeWidth) == 0 &&
		len(s.StrokeDash) == 0 && s.NonScalingStroke == nil
}

// =============================================================================
// Resolved - Fully Concrete Style
// =============================================================================

// Resolved is a fully concrete style: no absent fields, no relative
// expressions, no sequences. It is recomputed from scratch every pass and
// never mutated in place.
type Resolved struct {
	FillColor        Paint   `json:"fill_color"`
	FillOpacity      float64 `json:"fill_opacity"`
	StrokeColor      Paint   `json:"stroke_color"`
	StrokeWidth      float64 `json:"stroke_width"`
	StrokeDash       string  `json:"stroke_dasharray,omitempty"`
	NonScalingStroke bool    `json:"non_scaling_stroke"`
}

// Defaults returns the built-in root of every resolution chain.
func Defaults() Resolved {
	return Resolved{
		FillColor:        Color("#d3d3d3"),
		FillOpacity:      1,
		StrokeColor:      Color("#ffffff"),
		StrokeWidth:      1,
		StrokeDash:       "",
		NonScalingStroke: true,
	}
}

// DefaultHover is the hover delta applied when a map declares no hover
// aesthetic: the fill dims to 75% of its resolved opacity. Maps disable
// hover entirely with an explicit hover_disabled flag, which is distinct
// from simply omitting the hover aesthetic.
func DefaultHover() Style {
	return Style{FillOpacity: []Value{Rel(OpMul, 0.75)}}
}
