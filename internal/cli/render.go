package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/cache"
	planio "github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render/assembly"
)

const (
	defaultScale     = 2.0            // PNG zoom for high-DPI displays
	artifactCacheTTL = 24 * time.Hour // rendered diagrams are cheap to rebuild
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path
	format   string  // output format: "dot", "svg", "pdf", "png"
	detailed bool    // show areas and group IDs in node labels
	scale    float64 // PNG zoom factor
	noCache  bool    // bypass the artifact cache
}

// newRenderCmd creates the render command for assembly diagrams.
//
// Default settings:
//   - format: svg
//   - scale: 2.0 (PNG only)
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: "svg",
		scale:  defaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the plan's assembly diagram",
		Long: `Render draws the link structure of the plan as a node-link diagram:
polygons become nodes, joins become edges labeled with their wall
thickness. Solved polygons render solid, unsolved ones dashed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if cfg.Render.Detailed && !cmd.Flags().Changed("detailed") {
				opts.detailed = true
			}
			if cfg.Render.Scale > 0 && !cmd.Flags().Changed("scale") {
				opts.scale = cfg.Render.Scale
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show areas and group IDs in node labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG zoom factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// validFormats is the set of supported render formats.
var validFormats = map[string]bool{"dot": true, "svg": true, "pdf": true, "png": true}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', 'pdf', or 'png')", f)
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output carries
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the plan and renders the assembly diagram, consulting the
// artifact cache keyed by the plan content and render options.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	pl, err := planio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded plan: %d polygons, %d links", len(pl.Polygons), countLinks(&pl))

	c, err := newCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer c.Close()

	sp := newSpinnerWithContext(ctx, "Rendering assembly diagram...")
	sp.Start()
	data, cached, err := renderArtifact(ctx, c, &pl, opts)
	sp.Stop()
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "_assembly." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}

	printSuccess("Rendered %s", outputPath)
	printStats(len(pl.Polygons), countLinks(&pl), cached)
	return nil
}

// renderArtifact produces the requested artifact, via the cache when
// possible. The bool reports whether the artifact came from the cache.
func renderArtifact(ctx context.Context, c cache.Cache, pl *plan.Plan, opts *renderOpts) ([]byte, bool, error) {
	raw, err := planio.MarshalPlan(pl)
	if err != nil {
		return nil, false, err
	}

	keyOpts := cache.ArtifactKeyOpts{Format: opts.format, Detailed: opts.detailed}
	if opts.format == "png" {
		keyOpts.Scale = opts.scale
	}
	key := cache.NewDefaultKeyer().ArtifactKey(cache.Hash(raw), keyOpts)

	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	dot := assembly.ToDOT(pl, assembly.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = assembly.RenderSVG(dot)
	case "pdf":
		data, err = assembly.RenderPDF(dot)
	case "png":
		data, err = assembly.RenderPNG(dot, opts.scale)
	}
	if err != nil {
		return nil, false, err
	}

	_ = c.Set(ctx, key, data, artifactCacheTTL)
	return data, false, nil
}
