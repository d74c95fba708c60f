package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/observability"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/sink"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string  // output file path
	format string  // output format: svg, png, dot, json
	width  float64 // frame width in pixels
	height float64 // frame height in pixels
	seed   int64   // layout seed, 0 keeps the configured one
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "dot": true, "json": true}

// newGraphCmd creates the graph command for rendering payload files.
func newGraphCmd() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [payload.json]",
		Short: "Render a knowledge-graph payload to SVG, PNG, DOT, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, dot, json")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "layout seed")

	return cmd
}

// runGraph loads a payload file, normalizes it, and renders the settled
// layout to the requested format.
func runGraph(ctx context.Context, input string, opts *graphOpts) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	format := opts.format
	if format == "" {
		format = cfg.Render.Format
	}
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'dot', or 'json')", format)
	}

	payload, err := graph.ReadPayloadFile(input)
	if err != nil {
		return err
	}
	g := graph.Normalize(payload)
	logger.Infof("Loaded graph: %d entities, %d relations", g.NodeCount(), g.EdgeCount())
	if g.Dropped > 0 {
		printWarning("Dropped %d dangling relations", g.Dropped)
	}
	if g.IsEmpty() {
		return errors.New(errors.ErrCodeEmptyGraph, "payload contains no entities")
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	if err := renderGraphFileWith(ctx, g, output, format, opts); err != nil {
		return err
	}

	printSuccess("Generated %s", output)
	printStats(g.NodeCount(), g.EdgeCount(), g.Dropped)
	return nil
}

// renderGraphFile renders with flag-free defaults, for use by other
// commands (detect --graph).
func renderGraphFile(ctx context.Context, g graph.Graph, output, format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'dot', or 'json')", format)
	}
	return renderGraphFileWith(ctx, g, output, format, &graphOpts{})
}

// renderGraphFileWith runs the layout to settlement and writes the
// rendered artifact to output.
func renderGraphFileWith(ctx context.Context, g graph.Graph, output, format string, opts *graphOpts) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	lcfg := cfg.Layout.Apply(layout.DefaultConfig())
	if opts.width > 0 {
		lcfg.Width = opts.width
	} else if cfg.Render.Width > 0 {
		lcfg.Width = cfg.Render.Width
	}
	if opts.height > 0 {
		lcfg.Height = opts.height
	} else if cfg.Render.Height > 0 {
		lcfg.Height = cfg.Render.Height
	}
	if opts.seed != 0 {
		lcfg.Seed = opts.seed
	}

	prog := newProgress(logger)
	observability.Graph().OnLayoutStart(ctx, g.NodeCount())
	layoutStart := time.Now()
	eng := layout.New(g, lcfg)
	eng.Run()
	observability.Graph().OnLayoutComplete(ctx, eng.Steps(), eng.Settled(), time.Since(layoutStart))
	logger.Debugf("Layout settled after %d steps", eng.Steps())

	data, err := renderFormat(ctx, g, eng, format)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}
	prog.done("Rendered " + format)
	return nil
}

// renderFormat dispatches to the appropriate sink.
func renderFormat(ctx context.Context, g graph.Graph, eng *layout.Engine, format string) ([]byte, error) {
	switch format {
	case "svg":
		return sink.SVG(g, eng), nil
	case "png":
		return sink.PNG(g, eng)
	case "dot":
		return []byte(sink.DOT(g)), nil
	case "json":
		return sink.JSON(g, eng)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}
