// Package deraster converts a rasterized shape back into boundary
// polygons: it samples the shape's local field on a regular grid over
// its bounding box and extracts the 0.5-level contour with marching
// squares. The grid spacing per axis is the largest spacing no
// coarser than the requested resolution that evenly divides the box.
// One padding sample is added beyond each box edge, forced to zero,
// so every contour closes; extracted vertices are then clamped back
// into the box for crisp edges.
package deraster

import (
	"fmt"
	"math"

	"github.com/stanfordnqp/udon/pkg/field"
	"github.com/stanfordnqp/udon/pkg/geom"
)

// Threshold is the field level at which contours are extracted.
const Threshold = 0.5

// Deraster extracts the 0.5-level contour polygons of fn over box,
// sampling no coarser than resolution in either axis. Polygons are in
// the field's own (local) frame: outer boundaries wind
// counter-clockwise, holes clockwise. A field uniformly above or
// below the threshold yields an empty set and no error.
func Deraster(fn field.Func, box geom.Box, resolution float64) ([]geom.Polygon, error) {
	if !(resolution > 0) {
		return nil, fmt.Errorf("resolution %g: %w", resolution, ErrInvalidResolution)
	}
	w := box.Width()
	h := box.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("box %+v: %w", box, ErrEmptyBoundingBox)
	}

	xs := gridAxis(box.Min.X, box.Max.X, resolution)
	ys := gridAxis(box.Min.Y, box.Max.Y, resolution)
	vals := sampleGrid(field.Bounded(fn, box), xs, ys)

	// A field uniformly above or below the threshold over the box has
	// no boundary to extract: the shape is entirely filled or entirely
	// absent, and the polygon set is empty either way. Only in-box
	// samples count; the padding ring is forced to zero.
	if uniform(xs, ys, vals) {
		return nil, nil
	}

	loops := marchingSquares(xs, ys, vals, Threshold)

	polys := make([]geom.Polygon, 0, len(loops))
	for _, loop := range loops {
		if p := clampLoop(loop, box); p != nil {
			polys = append(polys, p)
		}
	}
	return polys, nil
}

// uniform reports whether every in-box sample sits on the same side
// of the threshold.
func uniform(xs, ys, vals []float64) bool {
	ny := len(ys)
	anyAbove := false
	anyBelow := false
	for ix := 1; ix < len(xs)-1; ix++ {
		for iy := 1; iy < ny-1; iy++ {
			if vals[ix*ny+iy] >= Threshold {
				anyAbove = true
			} else {
				anyBelow = true
			}
			if anyAbove && anyBelow {
				return false
			}
		}
	}
	return true
}

// gridAxis returns sample positions covering [lo, hi] with spacing
// extent/ceil(extent/resolution), plus one padding sample outside
// each end.
func gridAxis(lo, hi, resolution float64) []float64 {
	extent := hi - lo
	n := int(math.Ceil(extent / resolution))
	dx := extent / float64(n)
	out := make([]float64, n+3)
	for i := range out {
		out[i] = lo + float64(i-1)*dx
	}
	// Pin the box edges exactly; accumulated dx steps can drift.
	out[1] = lo
	out[n+1] = hi
	return out
}

// sampleGrid evaluates fn on the outer product of xs and ys in one
// call. The result is indexed vals[ix*len(ys)+iy].
func sampleGrid(fn field.Func, xs, ys []float64) []float64 {
	nx := len(xs)
	ny := len(ys)
	x := make([]float64, nx*ny)
	y := make([]float64, nx*ny)
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			x[ix*ny+iy] = xs[ix]
			y[ix*ny+iy] = ys[iy]
		}
	}
	return fn(x, y)
}

// clampLoop clamps loop vertices into the box, drops consecutive
// duplicates created by the clamp, and discards loops that degenerate
// to fewer than three vertices or to zero area.
func clampLoop(loop []geom.Vec2, box geom.Box) geom.Polygon {
	const eps = 1e-12
	out := make(geom.Polygon, 0, len(loop))
	for _, v := range loop {
		v.X = min(max(v.X, box.Min.X), box.Max.X)
		v.Y = min(max(v.Y, box.Min.Y), box.Max.Y)
		if n := len(out); n > 0 {
			last := out[n-1]
			if math.Abs(v.X-last.X) < eps && math.Abs(v.Y-last.Y) < eps {
				continue
			}
		}
		out = append(out, v)
	}
	// The walk repeats the start vertex only implicitly, but clamping
	// can make the ends meet; trim if so.
	for len(out) > 1 {
		first := out[0]
		last := out[len(out)-1]
		if math.Abs(first.X-last.X) < eps && math.Abs(first.Y-last.Y) < eps {
			out = out[:len(out)-1]
			continue
		}
		break
	}
	if len(out) < 3 || math.Abs(out.SignedArea()) < eps {
		return nil
	}
	return out
}
