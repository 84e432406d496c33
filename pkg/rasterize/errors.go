package rasterize

import "errors"

// ErrCoordMismatch is returned when the x and y sample slices have
// different lengths.
var ErrCoordMismatch = errors.New("rasterize: x and y have different lengths")
