// Package field provides lazily evaluated scalar fields over the
// plane. A field is a pure function of world coordinates; it carries
// no resolution and no bounding region, so callers can sample any set
// of points, in any order, across any number of workers. Fields
// compose: they can be pulled through affine frames, combined
// pointwise under a pluggable combinator, gated to a bounding box, or
// sourced from boundary polygons via their signed distance.
//
// Every operation here is plain float64 arithmetic (add, multiply,
// compare, min/max, exp), so a field built from differentiable inputs
// stays expressible in a gradient-propagating numeric pipeline. The
// one exception is the hard polygon indicator, which thresholds by
// construction.
package field
