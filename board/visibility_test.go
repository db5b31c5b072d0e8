package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuushi/visigraph/geom"
)

func TestSCurveVisibility(t *testing.T) {
	b := sCurveBoard()
	start := geom.Point{X: 1.5, Y: 3}
	end := geom.Point{X: 3.5, Y: 0}

	assert.False(t, b.IsVisible(start, end), "sight across the S-curve should be blocked")
	assert.True(t, b.IsVisible(geom.Point{X: 1.5, Y: 2}, geom.Point{X: 1.5, Y: 2.5}))
	assert.True(t, b.IsVisible(geom.Point{X: 1.4, Y: 2}, geom.Point{X: 1.6, Y: 2.5}))
	assert.False(t, b.IsVisible(geom.Point{X: 3, Y: 1}, geom.Point{X: 5, Y: 3}))
	assert.True(t, b.IsVisible(geom.Point{X: 3, Y: 0}, geom.Point{X: 3, Y: 1}),
		"a boundary edge is its own line of sight")
	assert.True(t, b.IsVisible(geom.Point{X: 2, Y: 3}, geom.Point{X: 1, Y: 1}))
}

func TestVisibilityCacheAgreesWithDirectTest(t *testing.T) {
	b := sCurveBoard()

	// Uncached answers first, then with a clean cache; every pair must agree
	nodes := b.Nodes().Sorted()
	direct := make(map[[2]geom.Point]bool)
	for _, p := range nodes {
		for _, q := range nodes {
			if p != q {
				direct[[2]geom.Point{p, q}] = b.isDirectlyVisible(p, q)
			}
		}
	}

	b.PrecalculateVisibility()
	for _, p := range nodes {
		for _, q := range nodes {
			if p == q {
				continue
			}
			assert.Equal(t, direct[[2]geom.Point{p, q}], b.IsVisible(p, q),
				"cache disagrees with direct test for %v %v", p, q)
			assert.Equal(t, b.IsVisible(p, q), b.IsVisible(q, p),
				"visibility must be symmetric for %v %v", p, q)
		}
	}
}

func TestDiagonalBlocksItsOwnPolygon(t *testing.T) {
	b := unitSquareBoard()

	// The corner-to-corner sight line coincides with the square's
	// triangulation diagonal, and the other corner pair crosses it.
	assert.False(t, b.IsVisible(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}))
	assert.False(t, b.IsVisible(geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 0}))

	// Adjacent corners see each other along the boundary
	assert.True(t, b.IsVisible(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}))
}

func TestVisibleSet(t *testing.T) {
	b := sCurveBoard()

	assert.Equal(t, geom.PointSet{
		{X: 2, Y: 2}: {}, {X: 2, Y: 3}: {}, {X: 1, Y: 3}: {}, {X: 1, Y: 1}: {},
	}, b.VisibleSet(geom.Point{X: 1.5, Y: 2.5}))

	assert.Equal(t, geom.PointSet{
		{X: 5, Y: 3}: {}, {X: 1, Y: 3}: {}, {X: 2, Y: 2}: {}, {X: 1, Y: 1}: {},
	}, b.VisibleSet(geom.Point{X: 2, Y: 3}))

	t.Run("extra points", func(t *testing.T) {
		pov := geom.Point{X: 1.5, Y: 2.5}
		inCorridor := geom.Point{X: 1.5, Y: 2}
		acrossTheWall := geom.Point{X: 0.5, Y: 0.5}
		set := b.VisibleSet(pov, inCorridor, acrossTheWall, pov)
		assert.True(t, set.Has(inCorridor))
		assert.False(t, set.Has(acrossTheWall))
		assert.False(t, set.Has(pov), "the point of view must never see itself")
	})

	t.Run("among candidates only", func(t *testing.T) {
		pov := geom.Point{X: 1.5, Y: 2.5}
		set := b.VisibleSetAmong(pov, geom.Point{X: 1.5, Y: 2})
		assert.Len(t, set, 1)
		assert.False(t, set.Has(geom.Point{X: 2, Y: 2}), "board nodes are not candidates here")
	})
}

func TestDbgDraw(t *testing.T) {
	// Render smoke test; inspect /tmp/visigraph_board.png when debugging
	b := sCurveBoard()
	route := b.ShortestPath(geom.Point{X: 1.5, Y: 3}, geom.Point{X: 3.5, Y: 0})
	b.dbgDraw(50, route)
	b.dbgDumpVisibility()
}
