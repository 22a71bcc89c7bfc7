// Package render groups the output sinks for resolved passes.
//
// # Overview
//
// A resolution pass produces one concrete {style, tier} pair per region; the
// subpackages here turn that into consumable output:
//
//   - [svgmap]: self-contained SVG documents with regions drawn in tier order
//
// External renderers that want a different target consume the pass output
// directly (the render command's JSON format serializes it as-is) rather
// than going through this package.
//
// [svgmap]: github.com/mlenz/regionmap/pkg/render/svgmap
package render
