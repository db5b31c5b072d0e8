package geom

import (
	"math"
	"sort"
)

// Point is an immutable 2D coordinate. It is a plain value type: equality and
// map-key hashing are by exact coordinate pair, with no tolerance. That
// exactness is what lets points index the visibility tables, so we never
// round or otherwise adjust a point after it is made.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

type PointSet map[Point]struct{}

func (s PointSet) Add(p Point) { s[p] = struct{}{} }

func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the set's points ordered by X, then Y. Map iteration order
// is randomized, so anything that must behave the same way twice (the path
// search, tests) walks points through this instead.
func (s PointSet) Sorted() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
	return points
}
