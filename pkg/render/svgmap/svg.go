// Package svgmap renders a resolved region pass as a self-contained SVG.
//
// The renderer consumes the output of a pipeline pass together with the map
// definition and writes one <path> element per visible region. Geometry is
// opaque: path data from the definition is copied through untouched, only
// presentation attributes are generated from the resolved styles.
//
// Regions are emitted in draw order (underlay, base, overlay, annotation) so
// later tiers paint over earlier ones. Hidden regions are omitted entirely.
// Within a tier, definition order is preserved, which makes the output
// byte-for-byte deterministic for a given input.
package svgmap

import (
	"bytes"
	"fmt"
	"html"

	"github.com/mlenz/regionmap/pkg/layers"
	"github.com/mlenz/regionmap/pkg/mapdef"
	"github.com/mlenz/regionmap/pkg/pipeline"
	"github.com/mlenz/regionmap/pkg/style"
)

const defaultViewBox = "0 0 100 100"

type Option func(*renderer)

type renderer struct {
	titles     bool
	background style.Paint
}

// WithTitles emits a <title> child per region carrying its display label,
// which browsers surface as a native tooltip.
func WithTitles() Option { return func(r *renderer) { r.titles = true } }

// WithBackground fills the full viewport with the given paint before any
// region is drawn.
func WithBackground(p style.Paint) Option { return func(r *renderer) { r.background = p } }

// Render writes the pass output as an SVG document.
func Render(buf *bytes.Buffer, def *mapdef.Def, regions []pipeline.RegionRender, opts ...Option) {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	viewBox := def.ViewBox
	if viewBox == "" {
		viewBox = defaultViewBox
	}

	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s">`+"\n",
		html.EscapeString(viewBox))

	if !r.background.IsZero() {
		fmt.Fprintf(buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n",
			html.EscapeString(r.background.String()))
	}

	for _, tier := range layers.DrawOrder {
		for _, reg := range regions {
			if reg.Tier != tier {
				continue
			}
			r.renderRegion(buf, def, reg)
		}
	}

	buf.WriteString("</svg>\n")
}

func (r *renderer) renderRegion(buf *bytes.Buffer, def *mapdef.Def, reg pipeline.RegionRender) {
	fmt.Fprintf(buf, `  <path id="region-%s" d="%s"`,
		html.EscapeString(reg.ID), html.EscapeString(reg.Path))

	s := reg.Style
	fmt.Fprintf(buf, ` fill="%s"`, html.EscapeString(s.FillColor.String()))
	if s.FillOpacity != 1 {
		fmt.Fprintf(buf, ` fill-opacity="%s"`, formatNumber(s.FillOpacity))
	}
	fmt.Fprintf(buf, ` stroke="%s"`, html.EscapeString(s.StrokeColor.String()))
	fmt.Fprintf(buf, ` stroke-width="%s"`, formatNumber(s.StrokeWidth))
	if s.StrokeDash != "" {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, html.EscapeString(s.StrokeDash))
	}
	if s.NonScalingStroke {
		buf.WriteString(` vector-effect="non-scaling-stroke"`)
	}

	if !r.titles {
		buf.WriteString("/>\n")
		return
	}

	buf.WriteString(">\n")
	label := reg.Label
	if label == "" {
		if rg, ok := def.Region(reg.ID); ok {
			label = rg.DisplayLabel()
		} else {
			label = reg.ID
		}
	}
	fmt.Fprintf(buf, "    <title>%s</title>\n", html.EscapeString(label))
	buf.WriteString("  </path>\n")
}

// formatNumber trims trailing zeros so 1.0 renders as "1" and 0.75 as "0.75".
func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
