package sdf

import "errors"

var (
	// ErrMalformedPolygon is returned for a polygon with fewer than
	// three vertices. Distances to such a shape are meaningless, so
	// the input is rejected rather than answered.
	ErrMalformedPolygon = errors.New("sdf: polygon has fewer than 3 vertices")

	// ErrNoPolygons is returned when a shape is built from an empty
	// polygon set.
	ErrNoPolygons = errors.New("sdf: no polygons")

	// ErrShapeMismatch is returned when the x and y coordinate slices
	// have different lengths.
	ErrShapeMismatch = errors.New("sdf: x and y have different lengths")
)
