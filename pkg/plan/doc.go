// Package plan defines the floor-plan document model shared by every
// planforge component.
//
// A [Plan] holds a flat list of polygons. Each [Polygon] owns its vertices
// and edges; relations between polygons (join links, rigid groups) are
// expressed as non-owning ID references resolved through [Plan.EdgeIndex],
// never as embedded pointers. This keeps deletion safe: removing a polygon
// can dangle an ID, and dangling IDs simply fail to resolve.
//
// # Units
//
// Vertex coordinates are world units; edge lengths, gaps and offsets are
// meters; wall thickness is centimeters. [UnitsPerMeter] converts between
// world units and meters.
//
// # Mutation Discipline
//
// Components never mutate a Plan in place. Operations deep-clone the
// document first ([Plan.Clone], [Polygon.Clone]) and return the modified
// copy, so a rejected operation always leaves the caller's document
// untouched and history snapshots stay cheap to take.
//
// # Errors
//
// The package also carries the structured error vocabulary ([Code],
// [Error]) used across the solver and the join pipeline. All errors are
// recoverable data, never panics.
package plan
