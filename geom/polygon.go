package geom

import "math"

// Polygon is an ordered, closed ring of at least three distinct points,
// validated at construction time to be non-self-intersecting. Construction
// also fixes all derived state for the polygon's lifetime: boundary
// segments, perimeter, the ear-clipping triangulation, and the diagonal
// segments the triangulation introduced. Treat a constructed Polygon as
// immutable; none of this is ever recomputed.
type Polygon struct {
	Points    []Point
	Segments  []Segment
	Perimeter float64

	// CCW is the caller-declared winding of Points. It is trusted, not
	// verified: a wrong declaration produces a wrong triangulation, not an
	// error.
	CCW bool

	// Triangles is the ear-clipping triangulation, covering the polygon.
	Triangles []Triangle

	// Diagonals are the triangulation edges that are not boundary edges,
	// keyed in canonical form.
	Diagonals SegmentSet
}

// NewPolygon builds a polygon from a ring of points listed in the declared
// winding order (ccw true for counterclockwise). A repeated closing point is
// dropped. Panics with a GeometryError when fewer than three distinct
// points remain, when the ring self-intersects, or when ear clipping cannot
// make progress on a degenerate ring; use the constructors at the module
// root to get these as errors instead.
func NewPolygon(ccw bool, points ...Point) *Polygon {
	pts := append([]Point(nil), points...)

	// Handler for if somebody completes the polygon (first point = last point)
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}

	distinct := make(PointSet, len(pts))
	for _, p := range pts {
		distinct.Add(p)
	}
	if len(distinct) < 3 {
		fatalf("polygon needs at least 3 distinct points, got %d", len(distinct))
	}

	poly := &Polygon{Points: pts, CCW: ccw}
	poly.Segments = make([]Segment, len(pts))
	for i, p := range pts {
		seg := Segment{p, pts[CircularIndex(i+1, len(pts))]}
		poly.Segments[i] = seg
		poly.Perimeter += seg.Length()
	}

	poly.triangulate()
	poly.validateSimple()
	return poly
}

// ContainsInArea reports whether p lies strictly inside the polygon or on
// its boundary.
func (poly *Polygon) ContainsInArea(p Point) bool {
	return ringContains(poly.Points, p)
}

// Ray-cast parity walk over a closed ring, counting crossings of a ray cast
// in the positive X direction. Boundary decisions get a tolerance so a point
// sitting on an edge registers as contained instead of flickering with
// rounding. The half-open straddle rule (upward edges include their start
// and exclude their end, downward edges the reverse) keeps a vertex shared
// by two edges from being counted twice.
func ringContains(ring []Point, p Point) bool {
	inside := false
	for i := range ring {
		p2 := ring[i]
		p1 := ring[CircularIndex(i+1, len(ring))]
		switch {
		case p1.X < p.X && p2.X < p.X:
			// The edge is strictly left of the query point, so it can't
			// intersect the rightward ray.
		case p == p2:
			// The query point is one of the vertices.
			return true
		case math.Abs(p1.Y-p.Y) < Tolerance && math.Abs(p2.Y-p.Y) < Tolerance:
			// Horizontal edge: contained iff the query sits within its span.
			if p.X >= math.Min(p1.X, p2.X) && p.X <= math.Max(p1.X, p2.X) {
				return true
			}
		case (p1.Y > p.Y && p2.Y <= p.Y) || (p2.Y > p.Y && p1.Y <= p.Y):
			det := (p1.X-p.X)*(p2.Y-p.Y) - (p1.Y-p.Y)*(p2.X-p.X)
			if math.Abs(det) < Tolerance {
				// The query point is on the edge itself.
				return true
			}
			if p2.Y < p1.Y {
				det = -det
			}
			if det > 0 {
				inside = !inside
			}
		}
	}
	return inside
}

// Ear-clipping triangulation. The ring is walked in counterclockwise order
// (reversing first if the declared winding is clockwise); the front three
// vertices are an ear iff they wind counterclockwise, the midpoint of the
// clipped diagonal stays inside the original polygon (an ear of a concave
// polygon can otherwise poke outside), and no other remaining vertex is
// trapped inside the candidate triangle. An ear clips off the middle vertex;
// anything else rotates the ring and retries. A full rotation with no ear
// means the ring is degenerate, which is a construction error rather than an
// infinite loop.
func (poly *Polygon) triangulate() {
	ring := append([]Point(nil), poly.Points...)
	if !poly.CCW {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}

	triangles := make([]Triangle, 0, len(ring)-2)
	rotations := 0
	for len(ring) >= 3 {
		t := Triangle{ring[0], ring[1], ring[2]}
		isEar := t.IsCCW() &&
			poly.ContainsInArea(Segment{ring[0], ring[2]}.Midpoint())
		for i := 3; isEar && i < len(ring); i++ {
			if t.ContainsInArea(ring[i]) {
				isEar = false
			}
		}

		if isEar {
			triangles = append(triangles, t)
			ring = append(ring[:1], ring[2:]...)
			rotations = 0
		} else {
			ring = append(ring[1:], ring[0])
			rotations++
			if rotations > len(ring) {
				fatalf("no ear found after a full rotation; ring %v is degenerate", poly.Points)
			}
		}
	}
	poly.Triangles = triangles

	boundary := make(SegmentSet, len(poly.Segments))
	for _, seg := range poly.Segments {
		boundary.Add(seg)
	}
	poly.Diagonals = make(SegmentSet)
	for _, t := range triangles {
		for _, edge := range t.Segments() {
			if !boundary.Has(edge) {
				poly.Diagonals.Add(edge)
			}
		}
	}
}

// A valid ring has no two boundary segments crossing each other. Adjacent
// segments share a vertex, which the crossing test already excludes.
func (poly *Polygon) validateSimple() {
	for i, a := range poly.Segments {
		for _, b := range poly.Segments[i+1:] {
			if a.Intersects(b, false) {
				fatalf("polygon is self-intersecting: %v crosses %v", a, b)
			}
		}
	}
}
