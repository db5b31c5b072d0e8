// A 2D visibility-pathfinding engine for Go.
//
// This package lets you describe a set of simple polygonal obstacles on a
// plane, ask whether two points have an unobstructed line of sight, and find
// the shortest obstacle-avoiding path between two points. It is meant as an
// embeddable planning kernel: you supply the obstacle geometry and the
// query points, and get back geometric facts and paths.
package visigraph

import (
	"github.com/pkg/errors"

	"github.com/osuushi/visigraph/board"
	"github.com/osuushi/visigraph/geom"
)

type Point = geom.Point
type Segment = geom.Segment
type Triangle = geom.Triangle
type Polygon = geom.Polygon
type Board = board.Board

// NewBoard creates an empty board. Use its Add method to place obstacles on
// it.
func NewBoard() *Board {
	return board.New()
}

// NewPolygon builds an obstacle polygon from a ring of at least three
// distinct points, listed in the declared winding order (ccw true for
// counterclockwise). Construction validates the ring and triangulates it; a
// self-intersecting or degenerate ring comes back as an error. See the geom
// package for the panic-based form.
func NewPolygon(ccw bool, points ...Point) (result *Polygon, err error) {
	defer func() {
		recoveredErr := geom.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return geom.NewPolygon(ccw, points...), nil
}

// NewPolygonFromCoords is NewPolygon for flat coordinate pairs:
// x1, y1, x2, y2, and so on.
func NewPolygonFromCoords(ccw bool, coords ...float64) (*Polygon, error) {
	if len(coords)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(coords))
	}
	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return NewPolygon(ccw, points...)
}

// Expand offsets a polygon's boundary by a uniform distance: positive moves
// it outward, negative inward. Geometry for which offsetting is undefined
// (adjacent edges collapsing to parallel lines) comes back as an error.
func Expand(poly *Polygon, distance float64) (result *Polygon, err error) {
	defer func() {
		recoveredErr := geom.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return poly.Expand(distance), nil
}

// ExpandBoard offsets every polygon on a board, returning a new board and
// leaving the original untouched.
func ExpandBoard(b *Board, distance float64) (result *Board, err error) {
	defer func() {
		recoveredErr := geom.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return b.Expanded(distance), nil
}
