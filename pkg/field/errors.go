package field

import "errors"

// ErrInvalidWidth is returned when a smoothing width is zero,
// negative or NaN.
var ErrInvalidWidth = errors.New("field: smoothing width must be positive")
