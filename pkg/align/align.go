// Package align computes the rigid transform that snaps one polygon's edge
// against another's.
//
// A transform rotates the source polygon about its own centroid until the
// two edges face each other (outward normals anti-parallel), then translates
// it so the source edge midpoint lands at the requested gap and slide offset
// from the target edge. Outward normals are derived from each polygon's
// winding direction, so a mirrored polygon still ends up facing the target.
package align

import (
	"math"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

// Transform is a rotation about the source centroid followed by a
// translation, in world units.
type Transform struct {
	Rotation float64 `json:"rotation"` // radians
	DX       float64 `json:"dx"`
	DY       float64 `json:"dy"`
}

// edgeFrame is the local geometry of one edge: midpoint, unit tangent and
// outward unit normal.
type edgeFrame struct {
	mid     geom.Point
	tangent geom.Point
	normal  geom.Point
}

// frame resolves an edge of p into its local geometry. The outward normal
// follows winding: in screen coordinates (y down) a clockwise polygon's
// outward side is the edge direction rotated -90°, a counter-clockwise
// polygon's is +90°. Edge direction is assumed to follow the stored vertex
// traversal.
func frame(p *plan.Polygon, edgeID string) (edgeFrame, *plan.Error) {
	e := p.Edge(edgeID)
	if e == nil {
		return edgeFrame{}, plan.NewError(plan.ErrCodeNotFound, "edge %s not found in polygon %s", edgeID, p.ID)
	}
	v1 := p.Vertex(e.Start)
	v2 := p.Vertex(e.End)
	if v1 == nil || v2 == nil {
		return edgeFrame{}, plan.NewError(plan.ErrCodeInvalidInput, "edge %s references missing vertices", edgeID)
	}

	tangent := v2.Point().Sub(v1.Point()).Unit()
	normal := tangent.PerpCW()
	if p.Clockwise() {
		normal = tangent.PerpCCW()
	}
	return edgeFrame{
		mid:     geom.Midpoint(v1.Point(), v2.Point()),
		tangent: tangent,
		normal:  normal,
	}, nil
}

// ComputeTransform returns the transform that places the source edge
// opposite the target edge, separated by gap meters along the target's
// outward normal and shifted by slide meters along the target's tangent.
func ComputeTransform(src *plan.Polygon, srcEdgeID string, dst *plan.Polygon, dstEdgeID string, slide, gap float64) (Transform, *plan.Error) {
	sf, err := frame(src, srcEdgeID)
	if err != nil {
		return Transform{}, err
	}
	df, err := frame(dst, dstEdgeID)
	if err != nil {
		return Transform{}, err
	}

	// The edges face each other: source normal points opposite the target's.
	rotation := df.normal.Angle() + math.Pi - sf.normal.Angle()

	target := df.mid.
		Add(df.normal.Scale(gap * plan.UnitsPerMeter)).
		Add(df.tangent.Scale(slide * plan.UnitsPerMeter))

	rotated := sf.mid.RotateAround(src.Centroid(), rotation)
	delta := target.Sub(rotated)

	return Transform{Rotation: rotation, DX: delta.X, DY: delta.Y}, nil
}

// Apply rotates p about its centroid and then translates it.
func Apply(p *plan.Polygon, t Transform) {
	pivot := p.Centroid()
	for i := range p.Vertices {
		pos := p.Vertices[i].Point().RotateAround(pivot, t.Rotation)
		p.Vertices[i].X = pos.X + t.DX
		p.Vertices[i].Y = pos.Y + t.DY
	}
}

// ProjectedOffset returns the slide offset, in meters, that reproduces the
// current relative placement of the source edge along the target edge. It
// projects the vector between the edge midpoints onto the target's unit
// tangent; joining with this offset keeps manually positioned polygons from
// jumping.
func ProjectedOffset(srcA, srcB, dstA, dstB geom.Point) float64 {
	tangent := dstB.Sub(dstA).Unit()
	between := geom.Midpoint(srcA, srcB).Sub(geom.Midpoint(dstA, dstB))
	return between.Dot(tangent) / plan.UnitsPerMeter
}
