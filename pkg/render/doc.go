// Package render provides visualization rendering for floor plans.
//
// # Overview
//
// This package contains the rendering pipeline that turns plan documents
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Assembly diagrams (in [assembly] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := assembly.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Assembly Diagrams
//
// The [assembly] subpackage renders the link structure of a plan as a
// node-link diagram: polygons become nodes, joined edges become graph
// edges. This is the quickest way to see which rooms form a rigid group
// and where wall thicknesses were agreed.
package render
