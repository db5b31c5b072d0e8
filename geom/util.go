package geom

import "math"

// Tolerance is the "close enough to zero" threshold used for boundary
// decisions: whether a point sits on an edge, and whether a segment is close
// enough to vertical or horizontal that its slope degenerates to ±Inf.
const Tolerance = 1e-7

// Near-equality for floats. Exact comparison is still used where identity
// matters (point equality, the parallel-segment check); this is only for
// boundary decisions, where accumulated error would otherwise flip the
// answer for a point that sits exactly on an edge.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat a vertex slice as a closed ring. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
