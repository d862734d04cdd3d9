// Package solver reconstructs polygon geometry from partial measurements.
//
// The solver takes a sketched polygon whose edges carry real-world lengths
// (and whose vertices may carry fixed interior angles) and recomputes exact
// vertex positions by wavefront trilateration:
//
//  1. Every fixed angle is substituted with an equivalent chord constraint
//     between its two perimeter neighbors (law of cosines), so angles and
//     lengths flow through the same machinery.
//  2. The first edge whose endpoints both exist seeds the solve. The seed
//     keeps the sketch's on-screen direction, anchoring the result to the
//     user's rough layout instead of a canonical orientation.
//  3. Any unsolved vertex with two constraints to already-solved vertices is
//     placed at the intersection of the two constraint circles, picking the
//     branch nearest its pre-solve position to preserve sketch chirality.
//     The loop repeats until no vertex makes progress.
//
// Constraint circles that miss each other by at most [Tolerance] world units
// are snapped to an interior estimate; the result is still a success but
// carries the Approximated flag. Harder misses fail with SEPARATED or
// CONTAINED codes; uncovered vertices fail with UNDERCONSTRAINED or
// UNREACHABLE. Failures never mutate the input: the returned polygon keeps
// its sketched positions with every vertex unsolved and the lock cleared.
//
// [Solve] is a pure function and therefore idempotent: solving an
// already-solved polygon again reproduces the same positions and the same
// Approximated flag.
package solver
