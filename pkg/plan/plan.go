package plan

import (
	"github.com/google/uuid"

	"github.com/matzehuels/planforge/pkg/geom"
)

// UnitsPerMeter is the fixed scale between world units and meters.
// All geometry math runs in world units; user-facing lengths are meters.
const UnitsPerMeter = 100.0

// EdgeKind distinguishes boundary edges from extra constraints.
type EdgeKind string

const (
	// KindPerimeter marks an edge on the closed boundary cycle.
	KindPerimeter EdgeKind = "perimeter"
	// KindDiagonal marks an additional length constraint between two
	// non-adjacent vertices.
	KindDiagonal EdgeKind = "diagonal"
)

// Vertex is a polygon corner. Solved reports whether the constraint solver
// has placed it; FixedAngle, when set, constrains the interior angle (in
// degrees) between the two incident perimeter edges.
type Vertex struct {
	ID         string   `json:"id"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Label      string   `json:"label,omitempty"`
	Solved     bool     `json:"solved,omitempty"`
	FixedAngle *float64 `json:"fixed_angle,omitempty"`
}

// Point returns the vertex position as a geometry point.
func (v Vertex) Point() geom.Point { return geom.Point{X: v.X, Y: v.Y} }

// Edge is a length constraint between two vertices of the same polygon.
// Length is meters. LinkedEdgeID names the partner edge of another polygon
// this edge is snapped to; the reference is symmetric except transiently
// while a thickness conflict awaits resolution. AlignmentOffset (meters) is
// stored on the source side of a join only.
type Edge struct {
	ID              string   `json:"id"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Length          float64  `json:"length"`
	Kind            EdgeKind `json:"kind"`
	Thickness       *float64 `json:"thickness,omitempty"`
	LinkedEdgeID    string   `json:"linked_edge_id,omitempty"`
	AlignmentOffset *float64 `json:"alignment_offset,omitempty"`
}

// Polygon is one sketched room. Locked is true iff the last solve placed
// every vertex; it gates joining and direct dragging. GroupID is shared by
// exactly the polygons mutually reachable over link edges; unlinked
// polygons carry no group.
type Polygon struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
	Locked   bool     `json:"locked,omitempty"`
	GroupID  string   `json:"group_id,omitempty"`
	Area     *float64 `json:"area,omitempty"`
}

// Vertex returns the vertex with the given ID, or nil.
func (p *Polygon) Vertex(id string) *Vertex {
	for i := range p.Vertices {
		if p.Vertices[i].ID == id {
			return &p.Vertices[i]
		}
	}
	return nil
}

// Edge returns the edge with the given ID, or nil.
func (p *Polygon) Edge(id string) *Edge {
	for i := range p.Edges {
		if p.Edges[i].ID == id {
			return &p.Edges[i]
		}
	}
	return nil
}

// Points returns the vertex positions in stored order.
func (p *Polygon) Points() []geom.Point {
	pts := make([]geom.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Point()
	}
	return pts
}

// Centroid returns the arithmetic mean of the vertex positions.
func (p *Polygon) Centroid() geom.Point { return geom.Centroid(p.Points()) }

// SignedArea returns the shoelace area over the stored vertex order, in
// square world units. The sign encodes winding direction.
func (p *Polygon) SignedArea() float64 { return geom.SignedArea(p.Points()) }

// Clockwise reports whether the stored vertex order winds clockwise in
// screen space.
func (p *Polygon) Clockwise() bool { return p.SignedArea() >= 0 }

// PerimeterEdgesAt returns the perimeter edges incident to the vertex, in
// stored edge order.
func (p *Polygon) PerimeterEdgesAt(vertexID string) []Edge {
	var out []Edge
	for _, e := range p.Edges {
		if e.Kind != KindPerimeter {
			continue
		}
		if e.Start == vertexID || e.End == vertexID {
			out = append(out, e)
		}
	}
	return out
}

// DiagonalBetween returns the index of a diagonal edge connecting a and b
// in either direction, or -1.
func (p *Polygon) DiagonalBetween(a, b string) int {
	for i, e := range p.Edges {
		if e.Kind != KindDiagonal {
			continue
		}
		if (e.Start == a && e.End == b) || (e.Start == b && e.End == a) {
			return i
		}
	}
	return -1
}

// Translate moves every vertex by (dx, dy) world units.
func (p *Polygon) Translate(dx, dy float64) {
	for i := range p.Vertices {
		p.Vertices[i].X += dx
		p.Vertices[i].Y += dy
	}
}

// Clone returns a deep copy of the polygon.
func (p *Polygon) Clone() Polygon {
	out := *p
	out.Vertices = make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		if v.FixedAngle != nil {
			a := *v.FixedAngle
			v.FixedAngle = &a
		}
		out.Vertices[i] = v
	}
	out.Edges = make([]Edge, len(p.Edges))
	for i, e := range p.Edges {
		if e.Thickness != nil {
			th := *e.Thickness
			e.Thickness = &th
		}
		if e.AlignmentOffset != nil {
			off := *e.AlignmentOffset
			e.AlignmentOffset = &off
		}
		out.Edges[i] = e
	}
	if p.Area != nil {
		a := *p.Area
		out.Area = &a
	}
	return out
}

// Plan is the in-memory floor-plan document.
type Plan struct {
	Polygons []Polygon `json:"polygons"`
}

// Polygon returns the polygon with the given ID, or nil.
func (pl *Plan) Polygon(id string) *Polygon {
	for i := range pl.Polygons {
		if pl.Polygons[i].ID == id {
			return &pl.Polygons[i]
		}
	}
	return nil
}

// EdgeIndex maps every edge ID to the ID of its owning polygon. The index
// is rebuilt on each call; it is the lookup used to resolve link references
// without embedded pointers.
func (pl *Plan) EdgeIndex() map[string]string {
	idx := make(map[string]string)
	for _, poly := range pl.Polygons {
		for _, e := range poly.Edges {
			idx[e.ID] = poly.ID
		}
	}
	return idx
}

// FindEdge resolves an edge ID to its owning polygon and the edge itself.
// Both are nil when the ID does not resolve.
func (pl *Plan) FindEdge(edgeID string) (*Polygon, *Edge) {
	for i := range pl.Polygons {
		if e := pl.Polygons[i].Edge(edgeID); e != nil {
			return &pl.Polygons[i], e
		}
	}
	return nil, nil
}

// Clone returns a deep copy of the plan.
func (pl *Plan) Clone() Plan {
	out := Plan{Polygons: make([]Polygon, len(pl.Polygons))}
	for i := range pl.Polygons {
		out.Polygons[i] = pl.Polygons[i].Clone()
	}
	return out
}

// NewGroupID mints a fresh, collision-free group identifier.
func NewGroupID() string { return uuid.NewString() }
