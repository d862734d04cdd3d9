// Package assembly renders a plan's link structure as node-link diagrams.
//
// Polygons become nodes and joined edge pairs become undirected graph
// edges. Solved polygons render as solid boxes, unsolved ones as dashed
// grey boxes, and links carry the agreed wall thickness as their label.
// Output is Graphviz DOT, rendered to SVG via [RenderSVG] or converted
// further with [render.ToPDF] and [render.ToPNG].
package assembly
