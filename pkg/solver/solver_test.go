package solver

import (
	"math"
	"testing"

	"github.com/matzehuels/planforge/pkg/plan"
)

const eps = 1e-6

func near(a, b float64) bool { return math.Abs(a-b) < eps }

// triangle builds a sketched triangle with the given measured side lengths
// (meters). The sketch positions are deliberately imprecise.
func triangle(a, b, c float64) plan.Polygon {
	return plan.Polygon{
		ID: "tri",
		Vertices: []plan.Vertex{
			{ID: "v1", X: 0, Y: 0},
			{ID: "v2", X: a * plan.UnitsPerMeter, Y: 0},
			{ID: "v3", X: 40, Y: 130},
		},
		Edges: []plan.Edge{
			{ID: "e1", Start: "v1", End: "v2", Length: a, Kind: plan.KindPerimeter},
			{ID: "e2", Start: "v2", End: "v3", Length: b, Kind: plan.KindPerimeter},
			{ID: "e3", Start: "v3", End: "v1", Length: c, Kind: plan.KindPerimeter},
		},
	}
}

// sketchSquare builds a 2x2 m square with a rough sketch layout, four
// perimeter lengths and one diagonal.
func sketchSquare() plan.Polygon {
	diag := 2 * math.Sqrt2
	return plan.Polygon{
		ID: "sq",
		Vertices: []plan.Vertex{
			{ID: "v1", X: 0, Y: 0},
			{ID: "v2", X: 200, Y: 0},
			{ID: "v3", X: 190, Y: 210},
			{ID: "v4", X: 10, Y: 195},
		},
		Edges: []plan.Edge{
			{ID: "e1", Start: "v1", End: "v2", Length: 2, Kind: plan.KindPerimeter},
			{ID: "e2", Start: "v2", End: "v3", Length: 2, Kind: plan.KindPerimeter},
			{ID: "e3", Start: "v3", End: "v4", Length: 2, Kind: plan.KindPerimeter},
			{ID: "e4", Start: "v4", End: "v1", Length: 2, Kind: plan.KindPerimeter},
			{ID: "d1", Start: "v1", End: "v3", Length: diag, Kind: plan.KindDiagonal},
		},
	}
}

func TestSolveTriangle(t *testing.T) {
	res := Solve(triangle(3, 4, 5))
	if res.Err != nil {
		t.Fatalf("Solve failed: %v", res.Err)
	}
	if res.Approximated {
		t.Error("valid triangle should solve exactly")
	}
	if !res.Polygon.Locked {
		t.Error("successful solve should lock the polygon")
	}
	for _, v := range res.Polygon.Vertices {
		if !v.Solved {
			t.Errorf("vertex %s not solved", v.ID)
		}
	}

	// 3-4-5 right triangle: area 6 m².
	if res.Polygon.Area == nil || !near(math.Abs(*res.Polygon.Area), 6) {
		t.Errorf("area = %v, want ±6", res.Polygon.Area)
	}

	// Side lengths must match the measurements.
	p := res.Polygon
	d12 := p.Vertices[0].Point().Distance(p.Vertices[1].Point())
	d23 := p.Vertices[1].Point().Distance(p.Vertices[2].Point())
	d31 := p.Vertices[2].Point().Distance(p.Vertices[0].Point())
	if !near(d12, 300) || !near(d23, 400) || !near(d31, 500) {
		t.Errorf("solved sides = %v, %v, %v", d12, d23, d31)
	}
}

func TestSolveTriangleMinimum(t *testing.T) {
	// Any side lengths satisfying the triangle inequality must solve exactly.
	tests := []struct{ a, b, c float64 }{
		{1, 1, 1},
		{3, 4, 5},
		{2, 2, 3.5},
		{10, 6, 5},
	}
	for _, tt := range tests {
		res := Solve(triangle(tt.a, tt.b, tt.c))
		if res.Err != nil {
			t.Errorf("triangle %v-%v-%v failed: %v", tt.a, tt.b, tt.c, res.Err)
		}
		if res.Approximated {
			t.Errorf("triangle %v-%v-%v should be exact", tt.a, tt.b, tt.c)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	first := Solve(sketchSquare())
	if first.Err != nil {
		t.Fatalf("first solve failed: %v", first.Err)
	}

	second := Solve(first.Polygon)
	if second.Err != nil {
		t.Fatalf("second solve failed: %v", second.Err)
	}
	if second.Approximated != first.Approximated {
		t.Error("Approximated flag changed on re-solve")
	}
	for i := range first.Polygon.Vertices {
		a := first.Polygon.Vertices[i]
		b := second.Polygon.Vertices[i]
		if !near(a.X, b.X) || !near(a.Y, b.Y) {
			t.Errorf("vertex %s moved on re-solve: (%v,%v) vs (%v,%v)", a.ID, a.X, a.Y, b.X, b.Y)
		}
	}
}

func TestSolveKeepsSketchChirality(t *testing.T) {
	res := Solve(sketchSquare())
	if res.Err != nil {
		t.Fatalf("solve failed: %v", res.Err)
	}
	// The sketch winds clockwise in screen space; the solve must not mirror it.
	if !res.Polygon.Clockwise() {
		t.Error("solve flipped the winding of the sketch")
	}
}

func TestSolveAngleSubstitution(t *testing.T) {
	// Square constrained by a 90° fixed angle instead of a diagonal. The
	// chord substituted for the angle is sqrt(2²+2²) = 2√2.
	p := sketchSquare()
	p.Edges = p.Edges[:4] // drop the diagonal
	angle := 90.0
	p.Vertices[1].FixedAngle = &angle // angle at v2 between e1 and e2

	res := Solve(p)
	if res.Err != nil {
		t.Fatalf("solve failed: %v", res.Err)
	}
	got := res.Polygon.Vertices[0].Point().Distance(res.Polygon.Vertices[2].Point())
	if !near(got, 2*math.Sqrt2*plan.UnitsPerMeter) {
		t.Errorf("v1-v3 distance = %v, want %v", got, 2*math.Sqrt2*plan.UnitsPerMeter)
	}
}

func TestSolveAngleSupersedesDiagonal(t *testing.T) {
	// A wrong user diagonal between the angle's neighbors must lose to the
	// angle's chord.
	p := sketchSquare()
	p.Edges[4].Length = 1.0 // contradicts the 90° corner
	angle := 90.0
	p.Vertices[1].FixedAngle = &angle

	res := Solve(p)
	if res.Err != nil {
		t.Fatalf("solve failed: %v", res.Err)
	}
	got := res.Polygon.Vertices[0].Point().Distance(res.Polygon.Vertices[2].Point())
	if !near(got, 2*math.Sqrt2*plan.UnitsPerMeter) {
		t.Errorf("chord did not supersede diagonal: distance = %v", got)
	}
}

func TestSolveToleranceBoundary(t *testing.T) {
	// Anchors at d = r1+r2+ε solve approximately; 0.01 world units further
	// they fail as SEPARATED.
	const slackMeters = Tolerance / plan.UnitsPerMeter

	boundary := Solve(triangle(2+slackMeters, 1, 1))
	if boundary.Err != nil {
		t.Fatalf("boundary solve failed: %v", boundary.Err)
	}
	if !boundary.Approximated {
		t.Error("boundary solve should be approximated")
	}

	beyond := Solve(triangle(2+slackMeters+0.01/plan.UnitsPerMeter, 1, 1))
	if beyond.Err == nil {
		t.Fatal("beyond-tolerance solve should fail")
	}
	if beyond.Err.Code != plan.ErrCodeSeparated {
		t.Errorf("code = %s, want SEPARATED", beyond.Err.Code)
	}
}

func TestSolveContained(t *testing.T) {
	// One circle deep inside the other: side c puts v3 only 1 m from v1
	// while v3 must be 5 m from v2 which is 3 m from v1.
	res := Solve(triangle(3, 5, 1))
	if res.Err == nil {
		t.Fatal("expected failure")
	}
	if res.Err.Code != plan.ErrCodeContained {
		t.Errorf("code = %s, want CONTAINED", res.Err.Code)
	}
}

func TestSolveUnderconstrained(t *testing.T) {
	p := sketchSquare()
	p.Edges = p.Edges[:4] // four lengths, no diagonal, no angle

	res := Solve(p)
	if res.Err == nil {
		t.Fatal("expected failure")
	}
	if res.Err.Code != plan.ErrCodeUnderconstrained {
		t.Errorf("code = %s, want UNDERCONSTRAINED", res.Err.Code)
	}
	if res.Polygon.Locked {
		t.Error("failed solve must leave the polygon unlocked")
	}
	for i, v := range res.Polygon.Vertices {
		if v.Solved {
			t.Errorf("vertex %s marked solved after failure", v.ID)
		}
		orig := sketchSquare().Vertices[i]
		if !near(v.X, orig.X) || !near(v.Y, orig.Y) {
			t.Errorf("vertex %s moved on failed solve", v.ID)
		}
	}
}

func TestSolveUnreachable(t *testing.T) {
	// Five vertices; counts suffice (two diagonals) but both diagonals
	// land on the same far vertex pair region leaving v4 uncovered.
	p := plan.Polygon{
		ID: "penta",
		Vertices: []plan.Vertex{
			{ID: "v1", X: 0, Y: 0},
			{ID: "v2", X: 200, Y: 0},
			{ID: "v3", X: 260, Y: 180},
			{ID: "v4", X: 100, Y: 300},
			{ID: "v5", X: -60, Y: 180},
		},
		Edges: []plan.Edge{
			{ID: "e1", Start: "v1", End: "v2", Length: 2, Kind: plan.KindPerimeter},
			{ID: "e2", Start: "v2", End: "v3", Length: 2, Kind: plan.KindPerimeter},
			{ID: "e5", Start: "v5", End: "v1", Length: 2, Kind: plan.KindPerimeter},
			// Two diagonals, but both tie the already-connected v1/v2/v3
			// corner together; v4 has no second constraint.
			{ID: "d1", Start: "v1", End: "v3", Length: 3.2, Kind: plan.KindDiagonal},
			{ID: "d2", Start: "v2", End: "v5", Length: 3.2, Kind: plan.KindDiagonal},
		},
	}

	res := Solve(p)
	if res.Err == nil {
		t.Fatal("expected failure")
	}
	if res.Err.Code != plan.ErrCodeUnreachable {
		t.Errorf("code = %s, want UNREACHABLE", res.Err.Code)
	}
}

func TestSolveTooFewVertices(t *testing.T) {
	p := plan.Polygon{
		ID: "line",
		Vertices: []plan.Vertex{
			{ID: "v1"}, {ID: "v2", X: 100},
		},
		Edges: []plan.Edge{
			{ID: "e1", Start: "v1", End: "v2", Length: 1, Kind: plan.KindPerimeter},
		},
	}
	res := Solve(p)
	if res.Err == nil || res.Err.Code != plan.ErrCodeTooFewVertices {
		t.Errorf("err = %v, want TOO_FEW_VERTICES", res.Err)
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	in := sketchSquare()
	before := in.Clone()

	_ = Solve(in)

	for i := range in.Vertices {
		if in.Vertices[i] != before.Vertices[i] {
			t.Fatalf("input vertex %d mutated", i)
		}
	}
	if in.Locked != before.Locked {
		t.Error("input lock mutated")
	}
}
