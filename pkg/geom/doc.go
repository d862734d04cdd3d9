// Package geom provides the 2D primitives underlying plan geometry.
//
// All functions operate on [Point] values in world-unit space and are pure:
// no function mutates its arguments. The coordinate convention follows
// screen space (y increases downward), which matters only for winding
// direction - see [SignedArea].
//
// # Core Operations
//
//   - Vector arithmetic: [Point.Add], [Point.Sub], [Point.Scale], [Point.Dot]
//   - Transforms: [Point.RotateAround], [Midpoint], [Centroid]
//   - Polygon measures: [SignedArea] (shoelace formula)
//   - Intersections: [SegmentIntersection], [IntersectCircles]
//
// # Circle Intersection
//
// [IntersectCircles] implements trilateration with a fixed numeric slack:
// configurations slightly beyond tangency (separated or nested) are snapped
// to an interior estimate and reported as [CircleApprox] instead of failing.
// Callers choose the slack; the solver uses a fixed tolerance in world units.
package geom
