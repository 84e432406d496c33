package field

import (
	"fmt"
	"math"

	"github.com/stanfordnqp/udon/pkg/geom"
	"github.com/stanfordnqp/udon/pkg/sdf"
)

// Func is a scalar field: it evaluates to one value per coordinate
// pair. Implementations must be pure (no hidden mutable state), must
// accept arbitrary points including points far outside any nominal
// bounding region, and must return a freshly allocated slice of
// len(x) values. len(x) must equal len(y); mismatched lengths are a
// programming error and panic.
type Func func(x, y []float64) []float64

func checkLen(x, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("field: len(x)=%d len(y)=%d", len(x), len(y)))
	}
}

// Uniform returns a field that is v everywhere.
func Uniform(v float64) Func {
	return func(x, y []float64) []float64 {
		checkLen(x, y)
		out := make([]float64, len(x))
		for i := range out {
			out[i] = v
		}
		return out
	}
}

// Transformed places a local field under a frame: the returned field
// evaluates f at the frame's inverse of the query points, so it is
// the world-space view of a node whose local definition stays frozen.
func Transformed(f Func, frame geom.Frame) Func {
	if frame.IsIdentity() {
		return f
	}
	return func(x, y []float64) []float64 {
		checkLen(x, y)
		lx := make([]float64, len(x))
		ly := make([]float64, len(y))
		for i := range x {
			lx[i], ly[i] = frame.Inverse(x[i], y[i])
		}
		return f(lx, ly)
	}
}

// Bounded gates a field to a bounding box: inside the box the value
// passes through unchanged (no clamping), outside it is zero.
func Bounded(f Func, box geom.Box) Func {
	return func(x, y []float64) []float64 {
		out := f(x, y)
		for i := range out {
			if !box.Contains(x[i], y[i]) {
				out[i] = 0
			}
		}
		return out
	}
}

// Clamp01 clips a field to [0, 1]. The core never clamps on its own;
// this is the opt-in wrapper for callers that want raster values kept
// in range.
func Clamp01(f Func) Func {
	return func(x, y []float64) []float64 {
		out := f(x, y)
		for i, v := range out {
			if v < 0 {
				out[i] = 0
			} else if v > 1 {
				out[i] = 1
			}
		}
		return out
	}
}

// FromPolygons returns the hard indicator field of a polygon set:
// 1 where the signed distance is <= 0, 0 elsewhere. The threshold is
// not differentiable; use SmoothFromPolygons where gradients must
// flow through a boundary-sourced field.
func FromPolygons(polys []geom.Polygon) (Func, error) {
	shape, err := sdf.NewShape(polys...)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) []float64 {
		out := shape.Distance(x, y)
		for i, d := range out {
			if d <= 0 {
				out[i] = 1
			} else {
				out[i] = 0
			}
		}
		return out
	}, nil
}

// SmoothFromPolygons returns a smoothed indicator of a polygon set:
// the logistic of the signed distance, 0.5 exactly on the boundary,
// approaching 1 inside and 0 outside over the given transition width.
func SmoothFromPolygons(polys []geom.Polygon, width float64) (Func, error) {
	if !(width > 0) {
		return nil, fmt.Errorf("width %g: %w", width, ErrInvalidWidth)
	}
	shape, err := sdf.NewShape(polys...)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) []float64 {
		out := shape.Distance(x, y)
		for i, d := range out {
			out[i] = 1 / (1 + math.Exp(d/width))
		}
		return out
	}, nil
}
