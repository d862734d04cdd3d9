package geom

import "math"

// Point is a 2D coordinate in world-unit space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the vector sum a + b.
func (a Point) Add(b Point) Point { return Point{a.X + b.X, a.Y + b.Y} }

// Sub returns the vector difference a - b.
func (a Point) Sub(b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }

// Scale returns a scaled by s.
func (a Point) Scale(s float64) Point { return Point{a.X * s, a.Y * s} }

// Dot returns the dot product of a and b.
func (a Point) Dot(b Point) float64 { return a.X*b.X + a.Y*b.Y }

// Length returns the Euclidean norm of a treated as a vector.
func (a Point) Length() float64 { return math.Hypot(a.X, a.Y) }

// Distance returns the Euclidean distance between a and b.
func (a Point) Distance(b Point) float64 { return a.Sub(b).Length() }

// Angle returns the direction of a treated as a vector, in radians.
func (a Point) Angle() float64 { return math.Atan2(a.Y, a.X) }

// Unit returns a normalized to length 1. The zero vector is returned
// unchanged.
func (a Point) Unit() Point {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// PerpCW returns a rotated by +90 degrees (clockwise in screen space).
func (a Point) PerpCW() Point { return Point{-a.Y, a.X} }

// PerpCCW returns a rotated by -90 degrees (counter-clockwise in screen space).
func (a Point) PerpCCW() Point { return Point{a.Y, -a.X} }

// Rotate returns a rotated about the origin by theta radians.
func (a Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: a.X*cos - a.Y*sin,
		Y: a.X*sin + a.Y*cos,
	}
}

// RotateAround returns a rotated about pivot by theta radians.
func (a Point) RotateAround(pivot Point, theta float64) Point {
	return a.Sub(pivot).Rotate(theta).Add(pivot)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Centroid returns the arithmetic mean of pts. The zero point is returned
// for an empty slice.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pts)))
}

// SignedArea returns the shoelace area of the closed polygon formed by pts.
// In screen space a positive result means clockwise winding. Fewer than
// three points yield zero.
func SignedArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// SegmentIntersection returns the intersection point of segments a1-a2 and
// b1-b2, and whether the segments actually cross within both spans.
// Collinear overlaps report no intersection.
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return Point{}, false
	}
	diff := b1.Sub(a1)
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	u := (diff.X*d1.Y - diff.Y*d1.X) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a1.Add(d1.Scale(t)), true
}
