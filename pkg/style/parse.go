package style

import (
	"strconv"
	"strings"

	"github.com/mlenz/regionmap/pkg/errors"
)

// Aesthetic field keys as they appear in map definitions.
const (
	KeyFillColor        = "fill_color"
	KeyFillOpacity      = "fill_opacity"
	KeyStrokeColor      = "stroke_color"
	KeyStrokeWidth      = "stroke_width"
	KeyStrokeDash       = "stroke_dasharray"
	KeyNonScalingStroke = "non_scaling_stroke"
)

// ParsePaint parses a paint literal. The string "none" is the explicit
// no-paint value; anything else is taken as a color verbatim.
func ParsePaint(s string) Paint {
	if strings.EqualFold(s, "none") {
		return NoPaint()
	}
	return Color(s)
}

// ParseValue parses a numeric style value. Numbers are literals; strings
// are relative expressions of the form "<op><operand>", e.g. "+0.5" or
// "*1.5", applied to the ancestor-resolved value.
func ParseValue(v any) (Value, error) {
	switch x := v.(type) {
	case float64:
		return Lit(x), nil
	case int64:
		return Lit(float64(x)), nil
	case int:
		return Lit(float64(x)), nil
	case string:
		if x == "" {
			return Value{}, errors.New(errors.ErrCodeInvalidInput, "empty relative expression")
		}
		op := Op(x[0])
		operand, err := strconv.ParseFloat(strings.TrimSpace(x[1:]), 64)
		if err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid relative expression: %q", x)
		}
		return Rel(op, operand), nil
	default:
		return Value{}, errors.New(errors.ErrCodeInvalidInput, "numeric style value must be a number or relative expression, got %T", v)
	}
}

// Parse builds a partial style layer from a loosely-typed field map, as
// decoded from TOML or JSON. Each field accepts a scalar or a sequence;
// scalars are normalized to one-element sequences. Unknown keys are
// rejected.
func Parse(fields map[string]any) (Style, error) {
	var s Style
	for key, raw := range fields {
		var err error
		switch key {
		case KeyFillColor:
			s.FillColor, err = parsePaints(raw)
		case KeyFillOpacity:
			s.FillOpacity, err = parseValues(raw)
		case KeyStrokeColor:
			s.StrokeColor, err = parsePaints(raw)
		case KeyStrokeWidth:
			s.StrokeWidth, err = parseValues(raw)
		case KeyStrokeDash:
			s.StrokeDash, err = parseStrings(raw)
		case KeyNonScalingStroke:
			b, ok := raw.(bool)
			if !ok {
				err = errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %T", key, raw)
			} else {
				s.NonScalingStroke = &b
			}
		default:
			err = errors.New(errors.ErrCodeInvalidInput, "unknown style field: %q", key)
		}
		if err != nil {
			return Style{}, err
		}
	}
	return s, nil
}

func parsePaints(v any) ([]Paint, error) {
	switch x := v.(type) {
	case string:
		return []Paint{ParsePaint(x)}, nil
	case []any:
		out := make([]Paint, 0, len(x))
		for _, el := range x {
			s, ok := el.(string)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "paint sequence entries must be strings, got %T", el)
			}
			out = append(out, ParsePaint(s))
		}
		return out, nil
	case []string:
		out := make([]Paint, 0, len(x))
		for _, s := range x {
			out = append(out, ParsePaint(s))
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "paint must be a string or sequence, got %T", v)
	}
}

func parseValues(v any) ([]Value, error) {
	switch x := v.(type) {
	case []any:
		out := make([]Value, 0, len(x))
		for _, el := range x {
			val, err := ParseValue(el)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	default:
		val, err := ParseValue(v)
		if err != nil {
			return nil, err
		}
		return []Value{val}, nil
	}
}

func parseStrings(v any) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, el := range x {
			s, ok := el.(string)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "sequence entries must be strings, got %T", el)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return x, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "value must be a string or sequence, got %T", v)
	}
}
