// Package sdf computes signed distances from points to boundary
// polygons. Distance magnitude is the Euclidean distance to the
// nearest polygon edge; the sign is negative inside and positive
// outside, with membership decided by the nonzero winding rule
// accumulated across all polygons of a shape. A hole is represented
// as a polygon wound opposite to its enclosing outline.
package sdf
