package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shoelace area of a ring, for checking triangulations against.
func ringArea(ring []Point) float64 {
	var sum float64
	for i, p := range ring {
		q := ring[CircularIndex(i+1, len(ring))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Helper to check that a polygon's triangulation is valid. The rules are:
// 1. An n-vertex polygon yields exactly n-2 triangles.
// 2. Every triangle is counterclockwise with nonzero area.
// 3. The triangle areas sum to the polygon's shoelace area.
// 4. The diagonal set is exactly the triangle edges minus the boundary edges.
func assertValidTriangulation(t *testing.T, poly *Polygon) {
	require.Len(t, poly.Triangles, len(poly.Points)-2)

	boundary := make(SegmentSet)
	for _, seg := range poly.Segments {
		boundary.Add(seg)
	}

	var areaSum float64
	edges := make(SegmentSet)
	for _, tri := range poly.Triangles {
		require.True(t, tri.IsCCW(), "clockwise triangle: %v", tri)
		require.Greater(t, tri.Area(), 0.0)
		areaSum += tri.Area()
		for _, edge := range tri.Segments() {
			edges.Add(edge)
		}
	}
	assert.InDelta(t, ringArea(poly.Points), areaSum, Tolerance)

	diagonals := make(SegmentSet)
	for edge := range edges {
		if !boundary.Has(edge) {
			diagonals.Add(edge)
		}
	}
	assert.Equal(t, diagonals, poly.Diagonals)
}

// The two obstacles from the S-shaped corridor board, counterclockwise.
func sCurveLeft() *Polygon {
	return NewPolygon(true,
		Point{0, 0}, Point{3, 0}, Point{3, 1}, Point{1, 1}, Point{1, 3}, Point{0, 3})
}

func sCurveRight() *Polygon {
	return NewPolygon(true,
		Point{4, 0}, Point{5, 0}, Point{5, 3}, Point{2, 3}, Point{2, 2}, Point{4, 2})
}

func TestNewPolygon(t *testing.T) {
	poly := NewPolygon(true, Point{0, 0}, Point{2, 0}, Point{2, 2}, Point{0, 2})
	assert.Len(t, poly.Points, 4)
	assert.Len(t, poly.Segments, 4)
	assert.InDelta(t, 8, poly.Perimeter, Tolerance)

	t.Run("closing point is dropped", func(t *testing.T) {
		closed := NewPolygon(true,
			Point{0, 0}, Point{2, 0}, Point{2, 2}, Point{0, 2}, Point{0, 0})
		assert.Equal(t, poly.Points, closed.Points)
		assert.Equal(t, poly.Segments, closed.Segments)
	})
}

func TestNewPolygonRejectsBadRings(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPolygon(true, Point{0, 0}, Point{1, 0})
		})
	})

	t.Run("too few distinct points", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPolygon(true, Point{0, 0}, Point{1, 0}, Point{0, 0}, Point{1, 0})
		})
	})

	t.Run("self-intersecting bowtie", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPolygon(true, Point{0, 0}, Point{1, 1}, Point{1, 0}, Point{0, 1})
		})
	})
}

func TestTriangleSignedArea(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{2, 0}, Point{0, 2}}
	assert.InDelta(t, 2, tri.SignedArea(), Tolerance)
	assert.True(t, tri.IsCCW())

	flipped := Triangle{tri.B, tri.A, tri.C}
	assert.InDelta(t, -2, flipped.SignedArea(), Tolerance)
	assert.InDelta(t, 2, flipped.Area(), Tolerance)
	assert.False(t, flipped.IsCCW())
}

func TestTriangulation(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		square := NewPolygon(true, Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
		assertValidTriangulation(t, square)

		// The single diagonal connects the first and third vertices
		assert.Len(t, square.Diagonals, 1)
		assert.True(t, square.Diagonals.Has(Segment{Point{0, 0}, Point{1, 1}}))
	})

	t.Run("concave S-curve halves", func(t *testing.T) {
		left := sCurveLeft()
		assertValidTriangulation(t, left)
		for _, diag := range []Segment{
			{Point{0, 0}, Point{3, 1}},
			{Point{0, 0}, Point{1, 1}},
			{Point{0, 0}, Point{1, 3}},
		} {
			assert.True(t, left.Diagonals.Has(diag), "missing diagonal %v", diag)
		}

		assertValidTriangulation(t, sCurveRight())
	})

	t.Run("clockwise declaration", func(t *testing.T) {
		// The same square ring listed clockwise, declared as such: the ear
		// clipper reverses it internally and still triangulates.
		square := NewPolygon(false, Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0})
		assertValidTriangulation(t, square)
	})
}

func TestContainsInArea(t *testing.T) {
	left := sCurveLeft()
	right := sCurveRight()

	t.Run("interior and exterior", func(t *testing.T) {
		assert.True(t, left.ContainsInArea(Point{2, .5}))
		assert.True(t, left.ContainsInArea(Point{1, 2.5}))
		assert.False(t, left.ContainsInArea(Point{3.5, .5}))
		assert.False(t, right.ContainsInArea(Point{3.5, .5}))
	})

	t.Run("vertices and edges count as contained", func(t *testing.T) {
		assert.True(t, left.ContainsInArea(Point{3, 1}))
		assert.True(t, left.ContainsInArea(Point{2, 0}))  // on a horizontal edge
		assert.True(t, left.ContainsInArea(Point{3, 0.5})) // on a vertical edge
	})

	t.Run("triangle centroids of a convex polygon", func(t *testing.T) {
		pentagon := NewPolygon(true,
			Point{2, 0}, Point{4, 1.5}, Point{3.2, 4}, Point{0.8, 4}, Point{0, 1.5})
		assertValidTriangulation(t, pentagon)
		for _, tri := range pentagon.Triangles {
			centroid := Point{(tri.A.X + tri.B.X + tri.C.X) / 3, (tri.A.Y + tri.B.Y + tri.C.Y) / 3}
			assert.True(t, pentagon.ContainsInArea(centroid))
		}
		for _, far := range []Point{{-10, 0}, {10, 10}, {2, -5}, {2, 50}} {
			assert.False(t, pentagon.ContainsInArea(far))
		}
	})
}
