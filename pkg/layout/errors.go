package layout

import "errors"

// ErrNilRasterFunc is returned when a raster device is constructed
// without a field function.
var ErrNilRasterFunc = errors.New("layout: raster device needs a field function")
