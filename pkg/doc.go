// Package pkg provides the core libraries for Planforge floor-plan solving.
//
// # Overview
//
// Planforge turns sketched floor-plan polygons with measured edge lengths
// into exact geometry and snaps solved rooms together into rigid
// assemblies. The pkg directory is organized into three main areas:
//
//  1. Geometry and solving ([geom], [plan], [solver])
//  2. Assembly ([align], [assembly], [history])
//  3. Infrastructure ([io], [cache], [render], [export], [observability])
//
// # Architecture
//
// The typical data flow through Planforge:
//
//	Sketched plan document (JSON)
//	         ↓
//	    [solver] package (trilateration from measurements)
//	         ↓
//	    [assembly] package (joins, rigid groups)
//	         ↓
//	    [render] / [export] packages (SVG diagrams, DXF drawings)
//
// # Quick Start
//
// Solve a polygon and join it to another:
//
//	import (
//	    "github.com/matzehuels/planforge/pkg/assembly"
//	    planio "github.com/matzehuels/planforge/pkg/io"
//	    "github.com/matzehuels/planforge/pkg/solver"
//	)
//
//	// 1. Load the document
//	pl, _ := planio.ImportJSON("apartment.json")
//
//	// 2. Solve each polygon from its measurements
//	for i := range pl.Polygons {
//	    res := solver.Solve(pl.Polygons[i])
//	    pl.Polygons[i] = res.Polygon
//	}
//
//	// 3. Snap two rooms together along an edge pair
//	res := assembly.Join(pl, "kitchen-e2", "hall-e4", 0)
//
// # Main Packages
//
// ## Geometry and Solving
//
// [geom] - Elementary 2D vector math: points, rotations, circle
// intersection with tolerance handling. Everything above it works in
// world units on screen-oriented coordinates (y grows downward).
//
// [plan] - The document model: vertices, edges, polygons and plans,
// together with the structured error codes shared by every layer.
//
// [solver] - Wavefront trilateration. Seeds on one edge, then places
// each remaining vertex at the intersection of two distance constraints,
// substituting fixed angles with virtual chords.
//
// ## Assembly
//
// [align] - Rigid alignment transforms between edge pairs: rotation
// until the outward faces oppose, then translation with a wall-thickness
// gap and a slide offset.
//
// [assembly] - The join pipeline on top of [align]: preconditions,
// thickness conflicts, bidirectional links, and rigid group bookkeeping.
//
// [history] - Bounded undo/redo snapshots of the document.
//
// ## Infrastructure
//
// [io] - JSON import/export with referential validation.
//
// [cache] - Artifact caching keyed by plan content hash. File, Redis and
// null backends.
//
// [render] - Assembly diagrams via Graphviz, plus SVG to PDF/PNG
// conversion.
//
// [export/dxf] - DXF line drawings for CAD interchange.
//
// [observability] - Hook interfaces for metrics and tracing with no-op
// defaults.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/solver/...       # Specific package
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/geom
// [plan]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/plan
// [solver]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/solver
// [align]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/align
// [assembly]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/assembly
// [history]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/history
// [io]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/render
// [export/dxf]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/export/dxf
// [observability]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/planforge/pkg/buildinfo
package pkg
