package assembly

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render"
)

// Options configures assembly diagram rendering.
type Options struct {
	// Detailed includes group IDs and areas in node labels.
	// When false, only the polygon name is shown.
	Detailed bool
}

// ToDOT converts a plan's link structure to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG], [RenderPDF],
// or [RenderPNG].
//
// Links are stored on both edges of a joined pair, so each pair is
// emitted once, keyed by edge ID order.
func ToDOT(pl *plan.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  sep=\"+10\";\n")
	buf.WriteString("\n")

	for i := range pl.Polygons {
		p := &pl.Polygons[i]
		label := fmtLabel(p, opts.Detailed)
		attrs := fmtAttrs(p, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", p.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	owners := pl.EdgeIndex()
	for i := range pl.Polygons {
		p := &pl.Polygons[i]
		for _, e := range p.Edges {
			if e.LinkedEdgeID == "" || e.ID > e.LinkedEdgeID {
				continue
			}
			other, ok := owners[e.LinkedEdgeID]
			if !ok {
				continue
			}
			if label := linkLabel(e); label != "" {
				fmt.Fprintf(&buf, "  %q -- %q [label=%q, fontsize=18];\n", p.ID, other, label)
			} else {
				fmt.Fprintf(&buf, "  %q -- %q;\n", p.ID, other)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p *plan.Polygon, detailed bool) string {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	if !detailed {
		return name
	}

	var parts []string
	if p.Area != nil {
		parts = append(parts, fmt.Sprintf("area: %.2f m²", *p.Area))
	}
	if p.GroupID != "" {
		parts = append(parts, fmt.Sprintf("group: %s", shortID(p.GroupID)))
	}
	if len(parts) == 0 {
		return name
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(p *plan.Polygon, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !p.Locked {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

func linkLabel(e plan.Edge) string {
	if e.Thickness == nil {
		return ""
	}
	return fmt.Sprintf("%g cm", *e.Thickness)
}

// shortID truncates a group UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
