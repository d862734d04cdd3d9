package geom

import "math"

// CircleStatus classifies the outcome of [IntersectCircles].
type CircleStatus int

const (
	// CircleHit means the circles intersect and an exact point was returned.
	CircleHit CircleStatus = iota
	// CircleApprox means the circles missed each other by no more than the
	// tolerance and an interior estimate was returned.
	CircleApprox
	// CircleSeparated means the circles are too far apart, beyond tolerance.
	CircleSeparated
	// CircleContained means one circle lies inside the other (or the centers
	// coincide), beyond tolerance.
	CircleContained
)

// String returns the status name for diagnostics.
func (s CircleStatus) String() string {
	switch s {
	case CircleHit:
		return "hit"
	case CircleApprox:
		return "approx"
	case CircleSeparated:
		return "separated"
	case CircleContained:
		return "contained"
	default:
		return "unknown"
	}
}

// IntersectCircles computes the intersection of the circle of radius r1
// around c1 with the circle of radius r2 around c2.
//
// When the circles cross, two intersection points exist; the one nearer ref
// is returned. When they miss each other by at most tol the point is snapped
// to an interior estimate and the status is [CircleApprox]: separated circles
// use the point dividing c1-c2 at ratio r1/(r1+r2), nested circles project
// from the larger-radius center through the smaller one. Beyond tol the
// status is [CircleSeparated] or [CircleContained] and the returned point is
// meaningless.
//
// If ref is exactly equidistant from both crossing points the chosen branch
// is unspecified.
func IntersectCircles(c1 Point, r1 float64, c2 Point, r2 float64, ref Point, tol float64) (Point, CircleStatus) {
	d := c1.Distance(c2)
	if d == 0 {
		return Point{}, CircleContained
	}

	if d > r1+r2 {
		if d <= r1+r2+tol {
			// Snap to the weighted interior point between the centers.
			t := r1 / (r1 + r2)
			return c1.Add(c2.Sub(c1).Scale(t)), CircleApprox
		}
		return Point{}, CircleSeparated
	}

	if rd := math.Abs(r1 - r2); d < rd {
		if d < rd-tol {
			return Point{}, CircleContained
		}
		// Project outward from the larger circle through the smaller center.
		big, small, r := c1, c2, r1
		if r2 > r1 {
			big, small, r = c2, c1, r2
		}
		return big.Add(small.Sub(big).Unit().Scale(r)), CircleApprox
	}

	// Standard two-circle intersection: foot of the radical line at distance
	// a from c1, offset h along the perpendicular.
	a := (d*d + r1*r1 - r2*r2) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0 // rounding noise near tangency
	}
	h := math.Sqrt(h2)

	u := c2.Sub(c1).Scale(1 / d)
	base := c1.Add(u.Scale(a))
	off := Point{-u.Y, u.X}.Scale(h)

	p1 := base.Add(off)
	p2 := base.Sub(off)
	if ref.Distance(p1) <= ref.Distance(p2) {
		return p1, CircleHit
	}
	return p2, CircleHit
}
