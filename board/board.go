// Package board holds a set of polygonal obstacles and answers visibility
// and shortest-path queries over them. A board caches pairwise node
// visibility; any structural change throws the cache away, and the next
// query that needs it rebuilds it in full.
//
// Boards are not safe for concurrent use: a board expects one logical owner
// during both mutation and querying.
package board

import "github.com/osuushi/visigraph/geom"

type cacheState int

const (
	cacheDirty cacheState = iota
	cacheClean
)

// Board is an obstacle set plus the visibility bookkeeping derived from it.
// Polygons are tracked by identity, which mirrors their immutability: the
// same *Polygon can only be on the board once.
type Board struct {
	polygons map[*geom.Polygon]struct{}

	// The visibility cache. Everything below is valid only while state is
	// cacheClean: visible maps each board node to the set of board nodes
	// with a clear line to it, cachedNodes is the node set the cache was
	// built over, and sortedNodes fixes a deterministic iteration order for
	// the path search.
	state       cacheState
	visible     map[geom.Point]geom.PointSet
	cachedNodes geom.PointSet
	sortedNodes []geom.Point
}

// New creates an empty board. Use Add to populate it.
func New() *Board {
	return &Board{polygons: make(map[*geom.Polygon]struct{})}
}

// Add puts a polygon on the board and invalidates the visibility cache.
func (b *Board) Add(poly *geom.Polygon) {
	b.polygons[poly] = struct{}{}
	b.invalidate()
}

// Remove takes a polygon off the board and invalidates the visibility
// cache. Removing a polygon that isn't on the board is a no-op.
func (b *Board) Remove(poly *geom.Polygon) {
	delete(b.polygons, poly)
	b.invalidate()
}

func (b *Board) invalidate() {
	b.state = cacheDirty
	b.visible = nil
	b.cachedNodes = nil
	b.sortedNodes = nil
}

// Polygons returns the polygons currently on the board, in no particular
// order.
func (b *Board) Polygons() []*geom.Polygon {
	polygons := make([]*geom.Polygon, 0, len(b.polygons))
	for poly := range b.polygons {
		polygons = append(polygons, poly)
	}
	return polygons
}

// Nodes returns the union of every polygon's vertices.
func (b *Board) Nodes() geom.PointSet {
	nodes := make(geom.PointSet)
	for poly := range b.polygons {
		for _, p := range poly.Points {
			nodes.Add(p)
		}
	}
	return nodes
}

// Segments returns the union of every polygon's boundary segments, keyed in
// canonical form.
func (b *Board) Segments() geom.SegmentSet {
	segments := make(geom.SegmentSet)
	for poly := range b.polygons {
		for _, seg := range poly.Segments {
			segments.Add(seg)
		}
	}
	return segments
}

// Expanded returns a new board with every polygon offset by distance
// (positive grows the obstacles, negative shrinks them). Useful for planning
// with a robot radius instead of an infinitely small point.
func (b *Board) Expanded(distance float64) *Board {
	expanded := New()
	for poly := range b.polygons {
		expanded.Add(poly.Expand(distance))
	}
	return expanded
}
