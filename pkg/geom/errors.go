package geom

import "errors"

// ErrDegenerateTransform is returned when a frame's linear part is not
// invertible. Degenerate frames are rejected at construction and never
// silently corrected.
var ErrDegenerateTransform = errors.New("geom: degenerate transform (non-invertible linear part)")
