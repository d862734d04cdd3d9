// Package assembly joins solved polygons into rigid-body groups.
//
// Polygons connect through link edges: an edge carrying a LinkedEdgeID that
// resolves to an edge of another polygon. The polygons mutually reachable
// over such links form a rigid group and share one group ID; they move
// together when any member is realigned.
//
// # Join Lifecycle
//
// A join request runs through [Join]: preconditions are checked (distinct
// polygons, both locked, not already linked), then either the join is
// applied directly or - when the two edges disagree on wall thickness - a
// [ThicknessConflict] is returned and the join waits for an external choice,
// applied later via [Resolve] or [ApplyJoin]. [Unlink] severs one link and
// recomputes all groups from scratch, since cutting one link can fragment an
// assembly into several components.
//
// # Purity
//
// Every operation clones the incoming plan and returns the modified copy.
// A rejected operation returns an error and leaves the caller's document
// exactly as it was.
package assembly
