package geom

import "math"

// Triangle is a polygon fixed at three vertices. Enough more can be assumed
// about triangles (a closed-form area whose sign is the winding) that they
// get their own type instead of reusing Polygon.
type Triangle struct {
	A, B, C Point
}

// SignedArea is the shoelace area of the triangle: positive when the
// vertices wind counterclockwise, negative when clockwise.
func (t Triangle) SignedArea() float64 {
	p, q, r := t.A, t.B, t.C
	return .5 * (-q.X*p.Y + r.X*p.Y + p.X*q.Y - r.X*q.Y - p.X*r.Y + q.X*r.Y)
}

// Area is the unsigned area magnitude.
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

// Segments returns the three boundary segments in vertex order.
func (t Triangle) Segments() [3]Segment {
	return [3]Segment{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// ContainsInArea reports whether p is inside the triangle or on its
// boundary.
func (t Triangle) ContainsInArea(p Point) bool {
	return ringContains([]Point{t.A, t.B, t.C}, p)
}
