// Package geom defines the planar value types shared across udon:
// points, axis-aligned boxes, polygons and affine frames.
// All types are immutable values; operations return new values.
package geom
