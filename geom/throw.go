package geom

import "github.com/pkg/errors"

// Construction runs several layers deep (ring building, ear clipping, edge
// offsetting), and threading errors up through every helper would add a ton
// of complexity to the geometry. Instead, construction failures panic, and
// the public API at the module root recovers to convert to an error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

// HandleGeometryPanicRecover converts the result of recover() into an error
// if it was raised by this package, and re-panics anything else.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
