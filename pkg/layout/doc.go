// Package layout defines the cell/reference hierarchy that carries
// both boundary polygons and raster devices. A cell is never mutated
// once placed; placements vary only by their reference frames, so a
// raster device's local definition stays a single source of truth no
// matter how many times it is translated, rotated, reflected or
// magnified.
package layout
