package style

// Resolve folds an ordered chain of partial layers into one concrete style,
// starting from the built-in defaults. Later layers override earlier ones
// field by field; count and cycleLength drive indexed sequence selection
// (cycleLength zero means clamp semantics).
//
// Resolve is pure: calling it twice with identical inputs yields identical
// output.
func Resolve(count, cycleLength int, chain ...Style) Resolved {
	out := Defaults()
	for _, layer := range chain {
		out = apply(out, layer, count, cycleLength)
	}
	return out
}

// apply overlays one partial layer onto the ancestor-resolved style.
func apply(ancestor Resolved, layer Style, count, cycleLength int) Resolved {
	out := ancestor

	if p, ok := at(layer.FillColor, count, cycleLength); ok {
		out.FillColor = p
	}
	if v, ok := at(layer.FillOpacity, count, cycleLength); ok {
		out.FillOpacity = v.Eval(ancestor.FillOpacity)
	}
	if p, ok := at(layer.StrokeColor, count, cycleLength); ok {
		out.StrokeColor = p
	}
	if v, ok := at(layer.StrokeWidth, count, cycleLength); ok {
		out.StrokeWidth = v.Eval(ancestor.StrokeWidth)
	}
	if d, ok := at(layer.StrokeDash, count, cycleLength); ok {
		out.StrokeDash = d
	}
	if layer.NonScalingStroke != nil {
		out.NonScalingStroke = *layer.NonScalingStroke
	}

	return out
}

// at selects the sequence element for count, reporting false for empty
// sequences (which are treated as absent).
func at[T any](seq []T, count, cycleLength int) (T, bool) {
	i := Index(len(seq), count, cycleLength)
	if i < 0 {
		var zero T
		return zero, false
	}
	return seq[i], true
}
