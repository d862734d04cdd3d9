package solver

import (
	"math"
	"time"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/observability"
	"github.com/matzehuels/planforge/pkg/plan"
)

// Tolerance is the slack, in world units, absorbed by trilateration before a
// constraint pair is declared impossible. At the canonical scale this is
// about 0.1 m of sketch imprecision.
const Tolerance = 10.0

// Result is the outcome of one solve run.
type Result struct {
	// Polygon is the solved polygon on success, or the input polygon with
	// all vertices unsolved and the lock cleared on failure.
	Polygon plan.Polygon
	// Approximated reports that at least one vertex was placed by the
	// tolerance snap rather than an exact circle intersection.
	Approximated bool
	// Err classifies the failure; nil on success. Approximated solves are
	// successes, not errors.
	Err *plan.Error
}

// constraint is one distance requirement between two vertices, in world
// units. Perimeter and diagonal edges contribute directly; fixed angles
// contribute virtual chords that exist only for the duration of the solve.
type constraint struct {
	a, b   string
	units  float64
	edgeID string // source edge, empty for virtual chords
	extra  bool   // diagonal or virtual, counts toward rigidity
}

// Solve recomputes vertex positions for p from its measurements. The input
// is never mutated.
func Solve(p plan.Polygon) Result {
	observability.Solver().OnSolveStart(p.ID, len(p.Vertices))
	start := time.Now()
	res := solve(p)

	status := "solved"
	switch {
	case res.Err != nil:
		status = string(res.Err.Code)
	case res.Approximated:
		status = "approximated"
	}
	observability.Solver().OnSolveComplete(p.ID, status, time.Since(start))
	return res
}

func solve(p plan.Polygon) Result {
	work := p.Clone()

	if len(work.Vertices) < 3 {
		return fail(p, plan.NewError(plan.ErrCodeTooFewVertices,
			"polygon %s has %d vertices, need at least 3", p.ID, len(p.Vertices)))
	}

	cons, extras := buildConstraints(&work)

	for i := range work.Vertices {
		work.Vertices[i].Solved = false
	}

	if !seed(&work) {
		return classify(p, &work, cons, extras)
	}

	approximated := propagate(&work, cons)

	for _, v := range work.Vertices {
		if !v.Solved {
			return classify(p, &work, cons, extras)
		}
	}

	area := work.SignedArea() / (plan.UnitsPerMeter * plan.UnitsPerMeter)
	work.Area = &area
	work.Locked = true
	return Result{Polygon: work, Approximated: approximated}
}

// buildConstraints converts the polygon's edges into distance constraints
// and substitutes every fixed angle with a virtual chord between the two far
// perimeter neighbors. A user diagonal directly between those neighbors is
// superseded by the chord. The second return value counts non-perimeter
// constraints, used for the underconstrained check.
func buildConstraints(p *plan.Polygon) ([]constraint, int) {
	var cons []constraint
	for _, e := range p.Edges {
		cons = append(cons, constraint{
			a:      e.Start,
			b:      e.End,
			units:  e.Length * plan.UnitsPerMeter,
			edgeID: e.ID,
			extra:  e.Kind == plan.KindDiagonal,
		})
	}

	for _, v := range p.Vertices {
		if v.FixedAngle == nil {
			continue
		}
		incident := p.PerimeterEdgesAt(v.ID)
		if len(incident) < 2 {
			continue
		}
		e1, e2 := incident[0], incident[1]
		n1 := otherEnd(e1, v.ID)
		n2 := otherEnd(e2, v.ID)

		// Law of cosines: the chord closing the angle at v.
		a, b := e1.Length, e2.Length
		theta := geom.Radians(*v.FixedAngle)
		chord := math.Sqrt(a*a + b*b - 2*a*b*math.Cos(theta))

		// A user diagonal between the same neighbors is superseded.
		if i := p.DiagonalBetween(n1, n2); i >= 0 {
			cons = removeConstraintFor(cons, p.Edges[i].ID)
		}
		cons = append(cons, constraint{
			a:     n1,
			b:     n2,
			units: chord * plan.UnitsPerMeter,
			extra: true,
		})
	}

	extras := 0
	for _, c := range cons {
		if c.extra {
			extras++
		}
	}
	return cons, extras
}

// removeConstraintFor drops the constraint built from the given edge.
func removeConstraintFor(cons []constraint, edgeID string) []constraint {
	for i, c := range cons {
		if c.edgeID == edgeID {
			return append(cons[:i:i], cons[i+1:]...)
		}
	}
	return cons
}

func otherEnd(e plan.Edge, vertexID string) string {
	if e.Start == vertexID {
		return e.End
	}
	return e.Start
}

// seed anchors the solve on the first edge whose endpoints both resolve.
// The first endpoint keeps its sketched position; the second is re-placed at
// the measured distance along the current on-screen direction.
func seed(p *plan.Polygon) bool {
	for _, e := range p.Edges {
		v1 := p.Vertex(e.Start)
		v2 := p.Vertex(e.End)
		if v1 == nil || v2 == nil {
			continue
		}
		dir := v2.Point().Sub(v1.Point()).Unit()
		if dir.Length() == 0 {
			dir = geom.Point{X: 1}
		}
		placed := v1.Point().Add(dir.Scale(e.Length * plan.UnitsPerMeter))
		v2.X, v2.Y = placed.X, placed.Y
		v1.Solved = true
		v2.Solved = true
		return true
	}
	return false
}

// propagate runs the wavefront until it stabilizes. Each pass places every
// vertex that has two constraints to already-solved anchors; each placed
// vertex is new progress, so the loop is bounded by the vertex count.
func propagate(p *plan.Polygon, cons []constraint) (approximated bool) {
	for progress := true; progress; {
		progress = false
		for i := range p.Vertices {
			v := &p.Vertices[i]
			if v.Solved {
				continue
			}
			c1, c2, ok := anchoredPair(p, cons, v.ID)
			if !ok {
				continue
			}
			pt, status := intersect(p, c1, c2, v)
			switch status {
			case geom.CircleHit, geom.CircleApprox:
				v.X, v.Y = pt.X, pt.Y
				v.Solved = true
				progress = true
				if status == geom.CircleApprox {
					approximated = true
				}
			}
		}
	}
	return approximated
}

// anchoredPair returns the first two constraints of the vertex whose far
// endpoint is already solved.
func anchoredPair(p *plan.Polygon, cons []constraint, vertexID string) (constraint, constraint, bool) {
	var found []constraint
	for _, c := range cons {
		other := ""
		switch vertexID {
		case c.a:
			other = c.b
		case c.b:
			other = c.a
		default:
			continue
		}
		if ov := p.Vertex(other); ov != nil && ov.Solved {
			found = append(found, c)
			if len(found) == 2 {
				return found[0], found[1], true
			}
		}
	}
	return constraint{}, constraint{}, false
}

func intersect(p *plan.Polygon, c1, c2 constraint, v *plan.Vertex) (geom.Point, geom.CircleStatus) {
	a1 := p.Vertex(otherOf(c1, v.ID))
	a2 := p.Vertex(otherOf(c2, v.ID))
	return geom.IntersectCircles(a1.Point(), c1.units, a2.Point(), c2.units, v.Point(), Tolerance)
}

func otherOf(c constraint, vertexID string) string {
	if c.a == vertexID {
		return c.b
	}
	return c.a
}

// classify builds the failure result once propagation has stabilized with
// unsolved vertices left. A vertex whose anchor circles hard-fail yields the
// geometric code; otherwise the failure is a coverage problem, reported as
// UNDERCONSTRAINED when the constraint count is short of rigidity and
// UNREACHABLE when counts suffice but the graph never reaches the vertex.
func classify(orig plan.Polygon, work *plan.Polygon, cons []constraint, extras int) Result {
	for i := range work.Vertices {
		v := &work.Vertices[i]
		if v.Solved {
			continue
		}
		c1, c2, ok := anchoredPair(work, cons, v.ID)
		if !ok {
			continue
		}
		switch _, status := intersect(work, c1, c2, v); status {
		case geom.CircleSeparated:
			return fail(orig, plan.NewError(plan.ErrCodeSeparated,
				"constraints at vertex %s cannot meet: lengths too short", v.ID))
		case geom.CircleContained:
			return fail(orig, plan.NewError(plan.ErrCodeContained,
				"constraints at vertex %s cannot meet: one circle inside the other", v.ID))
		}
	}

	needed := len(work.Vertices) - 3
	if needed < 0 {
		needed = 0
	}
	if extras < needed {
		return fail(orig, plan.NewError(plan.ErrCodeUnderconstrained,
			"polygon %s needs %d diagonal or angle constraints, has %d", orig.ID, needed, extras))
	}
	return fail(orig, plan.NewError(plan.ErrCodeUnreachable,
		"constraints of polygon %s do not reach every vertex", orig.ID))
}

// fail returns the untouched input geometry with solve state cleared.
func fail(orig plan.Polygon, err *plan.Error) Result {
	out := orig.Clone()
	for i := range out.Vertices {
		out.Vertices[i].Solved = false
	}
	out.Locked = false
	out.Area = nil
	return Result{Polygon: out, Err: err}
}
