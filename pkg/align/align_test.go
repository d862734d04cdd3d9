package align

import (
	"math"
	"testing"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

// square builds a solved 2x2 m square with its top-left corner at (x, y).
// Vertex order winds clockwise in screen space.
func square(id string, x, y float64) plan.Polygon {
	const s = 2 * plan.UnitsPerMeter
	return plan.Polygon{
		ID:     id,
		Locked: true,
		Vertices: []plan.Vertex{
			{ID: id + "-v1", X: x, Y: y, Solved: true},
			{ID: id + "-v2", X: x + s, Y: y, Solved: true},
			{ID: id + "-v3", X: x + s, Y: y + s, Solved: true},
			{ID: id + "-v4", X: x, Y: y + s, Solved: true},
		},
		Edges: []plan.Edge{
			{ID: id + "-e1", Start: id + "-v1", End: id + "-v2", Length: 2, Kind: plan.KindPerimeter}, // top
			{ID: id + "-e2", Start: id + "-v2", End: id + "-v3", Length: 2, Kind: plan.KindPerimeter}, // right
			{ID: id + "-e3", Start: id + "-v3", End: id + "-v4", Length: 2, Kind: plan.KindPerimeter}, // bottom
			{ID: id + "-e4", Start: id + "-v4", End: id + "-v1", Length: 2, Kind: plan.KindPerimeter}, // left
		},
	}
}

func edgeMid(p *plan.Polygon, edgeID string) geom.Point {
	e := p.Edge(edgeID)
	return geom.Midpoint(p.Vertex(e.Start).Point(), p.Vertex(e.End).Point())
}

func TestComputeTransformSnapsEdges(t *testing.T) {
	// Join b's left edge onto a's right edge, 10 cm gap, no slide.
	a := square("a", 0, 0)
	b := square("b", 1000, 1000)

	tr, err := ComputeTransform(&b, "b-e4", &a, "a-e2", 0, 0.10)
	if err != nil {
		t.Fatalf("ComputeTransform: %v", err)
	}
	Apply(&b, tr)

	// a's right edge midpoint is (200,100); its outward normal +X. The
	// source edge midpoint must land 0.10 m = 10 units away along it.
	got := edgeMid(&b, "b-e4")
	want := geom.Point{X: 210, Y: 100}
	if !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("source edge midpoint = %v, want %v", got, want)
	}
}

func TestComputeTransformSlideOffset(t *testing.T) {
	a := square("a", 0, 0)
	b := square("b", 500, 0)

	tr, err := ComputeTransform(&b, "b-e4", &a, "a-e2", 0.5, 0)
	if err != nil {
		t.Fatalf("ComputeTransform: %v", err)
	}
	Apply(&b, tr)

	// Slide moves the landing point along a-e2's tangent (+Y), 0.5 m = 50 units.
	got := edgeMid(&b, "b-e4")
	want := geom.Point{X: 200, Y: 150}
	if !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("source edge midpoint = %v, want %v", got, want)
	}
}

func TestWindingInvariance(t *testing.T) {
	// A mirrored source polygon (reversed vertex order) must still face the
	// target: after applying either transform the edges are anti-parallel.
	a := square("a", 0, 0)

	check := func(name string, b plan.Polygon) {
		t.Run(name, func(t *testing.T) {
			tr, err := ComputeTransform(&b, "b-e4", &a, "a-e2", 0, 0)
			if err != nil {
				t.Fatalf("ComputeTransform: %v", err)
			}
			Apply(&b, tr)

			sf, _ := frame(&b, "b-e4")
			df, _ := frame(&a, "a-e2")
			dot := sf.normal.Dot(df.normal)
			if !near(dot, -1) {
				t.Errorf("normals not anti-parallel: dot = %v", dot)
			}
		})
	}

	check("Original", square("b", 700, 300))

	// Mirror = reversed vertex order with edges re-derived so their
	// direction still follows the stored traversal.
	mirrored := square("b", 700, 300)
	for i, j := 0, len(mirrored.Vertices)-1; i < j; i, j = i+1, j-1 {
		mirrored.Vertices[i], mirrored.Vertices[j] = mirrored.Vertices[j], mirrored.Vertices[i]
	}
	for i := range mirrored.Edges {
		mirrored.Edges[i].Start, mirrored.Edges[i].End = mirrored.Edges[i].End, mirrored.Edges[i].Start
	}
	if mirrored.Clockwise() {
		t.Fatal("mirror should reverse the winding")
	}
	check("Mirrored", mirrored)
}

func TestApplyPreservesShape(t *testing.T) {
	a := square("a", 0, 0)
	b := square("b", 900, -200)

	tr, err := ComputeTransform(&b, "b-e1", &a, "a-e3", 0.25, 0.05)
	if err != nil {
		t.Fatalf("ComputeTransform: %v", err)
	}
	Apply(&b, tr)

	// Rigid transform: all side lengths survive.
	for _, e := range b.Edges {
		d := b.Vertex(e.Start).Point().Distance(b.Vertex(e.End).Point())
		if !near(d, 200) {
			t.Errorf("edge %s length = %v after transform, want 200", e.ID, d)
		}
	}
}

func TestProjectedOffset(t *testing.T) {
	// Target edge along +Y at x=200, source edge parallel at x=210 but
	// shifted 0.75 m along the tangent.
	dstA := geom.Point{X: 200, Y: 0}
	dstB := geom.Point{X: 200, Y: 200}
	srcA := geom.Point{X: 210, Y: 75}
	srcB := geom.Point{X: 210, Y: 275}

	got := ProjectedOffset(srcA, srcB, dstA, dstB)
	if !near(got, 0.75) {
		t.Errorf("ProjectedOffset = %v, want 0.75", got)
	}

	// The perpendicular component contributes nothing.
	if got := ProjectedOffset(geom.Point{X: 900, Y: 0}, geom.Point{X: 900, Y: 200}, dstA, dstB); !near(got, 0) {
		t.Errorf("perpendicular offset = %v, want 0", got)
	}
}

func TestComputeTransformMissingEdge(t *testing.T) {
	a := square("a", 0, 0)
	b := square("b", 0, 0)

	_, err := ComputeTransform(&b, "nope", &a, "a-e2", 0, 0)
	if err == nil || err.Code != plan.ErrCodeNotFound {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}
