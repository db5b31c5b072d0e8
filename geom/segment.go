package geom

import "math"

// Segment is a line segment between two points. Equality is undirected:
// Segment{a, b} and Segment{b, a} describe the same segment, and Key gives
// the canonical form so both land on the same map entry.
type Segment struct {
	A, B Point
}

// Key returns the canonical (endpoint-ordered) form of the segment, for use
// as a set key. Endpoints are ordered by X, then Y.
func (s Segment) Key() Segment {
	a, b := s.A, s.B
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return Segment{a, b}
}

// Equal reports whether both segments connect the same endpoint pair, in
// either direction.
func (s Segment) Equal(other Segment) bool {
	return s.Key() == other.Key()
}

func (s Segment) Length() float64 {
	return s.A.Dist(s.B)
}

// DeltaX is the change in X from A to B.
func (s Segment) DeltaX() float64 {
	return s.B.X - s.A.X
}

// DeltaY is the change in Y from A to B.
func (s Segment) DeltaY() float64 {
	return s.B.Y - s.A.Y
}

func (s Segment) Midpoint() Point {
	return Point{(s.A.X + s.B.X) * .5, (s.A.Y + s.B.Y) * .5}
}

// Slope is ΔY/ΔX. A near-vertical segment gets ±Inf with the sign of ΔY.
// Zero-length segments fall through the same rule rather than erroring: ΔY
// of exactly zero counts as non-negative, so the slope comes out +Inf.
func (s Segment) Slope() float64 {
	dx, dy := s.DeltaX(), s.DeltaY()
	if math.Abs(dx) < Tolerance {
		if dy < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return dy / dx
}

// PerpSlope is the slope of a line perpendicular to s: −ΔX/ΔY, going ±Inf
// with the sign of −ΔX when the segment is near-horizontal.
func (s Segment) PerpSlope() float64 {
	dx, dy := s.DeltaX(), s.DeltaY()
	if math.Abs(dy) < Tolerance {
		if -dx < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return -dx / dy
}

// SegmentFromSlope builds a segment from origin along the line of the given
// slope, deriving the far endpoint from a signed distance. Positive distance
// takes the positive-X sense of the slope direction; for a vertical
// (infinite) slope, the sign of the infinity picks the direction and
// positive distance follows it. Panics with a GeometryError when the slope
// or distance is NaN, since then there is not enough information to derive
// an endpoint.
func SegmentFromSlope(origin Point, slope, distance float64) Segment {
	if math.IsNaN(slope) || math.IsNaN(distance) {
		fatalf("cannot derive a segment endpoint from slope %v and distance %v", slope, distance)
	}
	var ux, uy float64
	if math.IsInf(slope, 0) {
		ux, uy = 0, 1
		if math.IsInf(slope, -1) {
			uy = -1
		}
	} else {
		norm := math.Hypot(1, slope)
		ux, uy = 1/norm, slope/norm
	}
	end := Point{origin.X + distance*ux, origin.Y + distance*uy}
	return Segment{origin, end}
}

// Intersects is the crossing test between two segments.
//
// Parallel segments never intersect under this predicate, including the
// collinear-overlap case. Parallelism is decided by exactly comparing
// cross-multiplied deltas, so a segment compared with itself is simply
// parallel, and a zero-length segment is parallel to everything. Otherwise
// the strict orientation test decides.
//
// When countSharedVertices is false, segments that merely share an endpoint
// do not intersect. That is the form used to detect crossing rather than
// touching: polygon edges meet at vertices, and visibility rays may
// legitimately terminate on one.
func (s Segment) Intersects(other Segment, countSharedVertices bool) bool {
	if s.DeltaX()*other.DeltaY() == s.DeltaY()*other.DeltaX() {
		return false
	}
	a, b := s.A, s.B
	c, d := other.A, other.B
	return ccw(a, c, d) != ccw(b, c, d) &&
		ccw(a, b, c) != ccw(a, b, d) &&
		(countSharedVertices || (a != c && a != d && b != c && b != d))
}

// Strict counterclockwise test for the ordered triple (a, b, c). Collinear
// triples are not counterclockwise.
func ccw(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentSet stores segments keyed by their canonical form, so membership is
// direction-independent.
type SegmentSet map[Segment]struct{}

func (s SegmentSet) Add(seg Segment) { s[seg.Key()] = struct{}{} }

func (s SegmentSet) Has(seg Segment) bool {
	_, ok := s[seg.Key()]
	return ok
}
