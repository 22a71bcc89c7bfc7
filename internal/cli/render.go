package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/mapdef"
	"github.com/mlenz/regionmap/pkg/pipeline"
	"github.com/mlenz/regionmap/pkg/region"
	"github.com/mlenz/regionmap/pkg/render/svgmap"
)

const (
	formatSVG  = "svg"  // rendered vector output
	formatJSON = "json" // resolved pass output for external renderers
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	mapPath    string // map definition file
	valuesPath string // value map JSON file (optional, defaults to the definition's seed values)
	hover      string // hovered region id (optional)
	format     string // output format: "svg" or "json"
	output     string // output file path (stdout when empty)
	titles     bool   // emit <title> tooltips in SVG output
}

// newRenderCmd creates the render command, which runs one resolution pass
// over a map definition and writes the result.
//
// Default settings:
//   - format: svg
//   - values: the definition's seed values
//   - output: stdout
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
		titles: true,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Resolve a map definition and write SVG or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mapPath, "map", "m", "", "map definition file (TOML)")
	cmd.Flags().StringVar(&opts.valuesPath, "values", "", "value map file (JSON)")
	cmd.Flags().StringVar(&opts.hover, "hover", "", "hovered region id")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout when empty)")
	cmd.Flags().BoolVar(&opts.titles, "titles", opts.titles, "emit region tooltips in SVG output")

	return cmd
}

// validateFormat checks that the requested format is supported.
func validateFormat(format string) error {
	if format != formatSVG && format != formatJSON {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'json')", format)
	}
	return nil
}

func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	def, err := loadDef(opts.mapPath)
	if err != nil {
		return err
	}

	values, err := seedValues(def, opts.valuesPath)
	if err != nil {
		return err
	}
	if opts.hover != "" {
		if _, ok := def.Region(opts.hover); !ok {
			return errors.New(errors.ErrCodeRegionNotFound, "unknown region: %s", opts.hover)
		}
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(def, logger)
	out := runner.Pass(ctx, values, opts.hover)
	prog.done(fmt.Sprintf("Resolved %d regions", len(out)))

	data, err := encodePass(def, out, opts)
	if err != nil {
		return err
	}
	return writeOutput(data, opts.output)
}

// encodePass serializes the pass output in the requested format.
func encodePass(def *mapdef.Def, out []pipeline.RegionRender, opts *renderOpts) ([]byte, error) {
	switch opts.format {
	case formatJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode pass output")
		}
		return append(data, '\n'), nil
	default:
		var svgOpts []svgmap.Option
		if opts.titles {
			svgOpts = append(svgOpts, svgmap.WithTitles())
		}
		var buf bytes.Buffer
		svgmap.Render(&buf, def, out, svgOpts...)
		return buf.Bytes(), nil
	}
}

// writeOutput writes data to the output path, or stdout when empty.
func writeOutput(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printSuccess("Wrote %s", path)
	return nil
}

// seedValues returns the values to start from for commands that take an
// optional values file.
func seedValues(def *mapdef.Def, path string) (region.ValueMap, error) {
	if path == "" {
		return def.Values.Clone(), nil
	}
	return mapdef.ReadValuesFile(path)
}
