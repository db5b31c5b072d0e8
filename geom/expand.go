package geom

import "math"

// An offset edge-line: the infinite line with the original edge's slope,
// passing through the displaced edge midpoint.
type offsetLine struct {
	through Point
	slope   float64
}

// Expand returns a polygon whose boundary is offset by a uniform distance:
// positive distance moves every edge outward, away from the interior, and
// negative moves it inward. Each boundary edge is slid along its
// perpendicular, and consecutive offset edge-lines are intersected to form
// the new vertices; vertex i of the result comes from the edges meeting at
// vertex i, so vertex order, count and the declared winding are all
// preserved. The result is re-validated by the Polygon constructor.
//
// Panics with a GeometryError when two adjacent offset lines are parallel
// (equal slopes, or both vertical), which leaves their vertex undefined.
func (poly *Polygon) Expand(distance float64) *Polygon {
	n := len(poly.Points)
	lines := make([]offsetLine, n)
	for i, edge := range poly.Segments {
		lines[i] = offsetEdge(edge, distance, poly.CCW)
	}

	points := make([]Point, n)
	for i := range points {
		// The edges meeting at vertex i are segment i-1 (ending there) and
		// segment i (starting there).
		points[i] = intersectLines(lines[CircularIndex(i-1, n)], lines[i])
	}
	return NewPolygon(poly.CCW, points...)
}

// Displace an edge's midpoint along its perpendicular so that a positive
// distance lands on the polygon's outside. For a counterclockwise ring the
// interior lies to the left of travel, so the outward normal is the travel
// direction rotated clockwise; a clockwise ring flips it.
func offsetEdge(edge Segment, distance float64, ccw bool) offsetLine {
	nx, ny := edge.DeltaY(), -edge.DeltaX()
	if !ccw {
		nx, ny = -nx, -ny
	}

	// SegmentFromSlope walks the perpendicular in its positive-X (or, when
	// vertical, signed-infinity) sense; flip the signed distance when that
	// sense opposes the outward normal.
	perp := edge.PerpSlope()
	ux, uy := 1.0, perp
	if math.IsInf(perp, 0) {
		ux, uy = 0, 1
		if math.IsInf(perp, -1) {
			uy = -1
		}
	}
	if nx*ux+ny*uy < 0 {
		distance = -distance
	}
	through := SegmentFromSlope(edge.Midpoint(), perp, distance).B
	return offsetLine{through, edge.Slope()}
}

// Intersect two offset edge-lines, special-casing vertical (infinite-slope)
// lines, which the slope-intercept solve can't express.
func intersectLines(a, b offsetLine) Point {
	aVert := math.IsInf(a.slope, 0)
	bVert := math.IsInf(b.slope, 0)
	switch {
	case aVert && bVert:
		fatalf("cannot offset: adjacent edge-lines at x=%v and x=%v are both vertical", a.through.X, b.through.X)
	case aVert:
		return Point{a.through.X, b.through.Y + (a.through.X-b.through.X)*b.slope}
	case bVert:
		return Point{b.through.X, a.through.Y + (b.through.X-a.through.X)*a.slope}
	}
	if a.slope == b.slope {
		fatalf("cannot offset: adjacent edge-lines are parallel with slope %v", a.slope)
	}
	x := (b.through.Y - a.through.Y + a.slope*a.through.X - b.slope*b.through.X) / (a.slope - b.slope)
	y := a.through.Y + (x-a.through.X)*a.slope
	return Point{x, y}
}
