package board

import "github.com/osuushi/visigraph/geom"

// PrecalculateVisibility builds the pairwise visibility cache over the
// board's nodes, testing each unordered pair exactly once and recording
// hits symmetrically. Returns false if the cache was already valid, true if
// it (re)built. Queries call this lazily, so there's no need to call it by
// hand before ShortestPath; it's exported for callers that want to pay the
// O(n²) cost up front.
func (b *Board) PrecalculateVisibility() bool {
	if b.state == cacheClean {
		return false
	}

	nodes := b.Nodes()
	sorted := nodes.Sorted()
	visible := make(map[geom.Point]geom.PointSet, len(sorted))
	for _, p := range sorted {
		visible[p] = make(geom.PointSet)
	}
	for i, p := range sorted {
		for _, q := range sorted[i+1:] {
			if b.isDirectlyVisible(p, q) {
				visible[p].Add(q)
				visible[q].Add(p)
			}
		}
	}

	b.visible = visible
	b.cachedNodes = nodes
	b.sortedNodes = sorted
	b.state = cacheClean
	return true
}

// Direct line-of-sight test, ignoring the cache. The sight line is blocked
// if it crosses any boundary segment or triangulation diagonal of any
// polygon, or if it coincides with a diagonal. Touching a vertex does not
// block; sight lines may legitimately start or end on polygon corners.
func (b *Board) isDirectlyVisible(p, q geom.Point) bool {
	sight := geom.Segment{A: p, B: q}
	for poly := range b.polygons {
		for _, seg := range poly.Segments {
			if seg.Intersects(sight, false) {
				return false
			}
		}
		for diag := range poly.Diagonals {
			if diag.Intersects(sight, false) {
				return false
			}
		}
		if poly.Diagonals.Has(sight) {
			return false
		}
	}
	return true
}

// IsVisible reports whether two points have an unobstructed straight line
// between them. When the cache is clean and both points are board nodes the
// answer comes straight from the cache; the cache is complete over board
// nodes, so absence there means blocked. Any other point (an arbitrary path
// endpoint, say) falls back to a direct test without mutating the cache.
func (b *Board) IsVisible(p, q geom.Point) bool {
	if b.state == cacheClean {
		if b.visible[p].Has(q) {
			return true
		}
		if b.cachedNodes.Has(p) && b.cachedNodes.Has(q) {
			return false
		}
	}
	return b.isDirectlyVisible(p, q)
}

// VisibleSet returns every board node visible from pov, plus any of the
// extra points that are. pov itself is never part of the result.
func (b *Board) VisibleSet(pov geom.Point, extra ...geom.Point) geom.PointSet {
	set := b.VisibleSetAmong(pov, extra...)
	for node := range b.Nodes() {
		if node != pov && b.IsVisible(pov, node) {
			set.Add(node)
		}
	}
	return set
}

// VisibleSetAmong is VisibleSet restricted to just the given candidate
// points; the board's own nodes are not considered.
func (b *Board) VisibleSetAmong(pov geom.Point, candidates ...geom.Point) geom.PointSet {
	set := make(geom.PointSet)
	for _, c := range candidates {
		if c != pov && b.IsVisible(pov, c) {
			set.Add(c)
		}
	}
	return set
}
