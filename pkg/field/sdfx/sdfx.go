// Package sdfx adapts 2D signed distance shapes from the
// github.com/deadsy/sdfx CAD library into udon fields, so sdfx
// primitives (circles, rounded boxes, polygons, offsets) can serve as
// raster sources for raster devices.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/stanfordnqp/udon/pkg/field"
	"github.com/stanfordnqp/udon/pkg/geom"
)

// FromSDF2 returns the hard indicator field of an sdfx shape:
// 1 where the shape's distance is <= 0, 0 elsewhere.
func FromSDF2(s sdf.SDF2) field.Func {
	return func(x, y []float64) []float64 {
		out := make([]float64, len(x))
		for i := range x {
			if s.Evaluate(v2.Vec{X: x[i], Y: y[i]}) <= 0 {
				out[i] = 1
			}
		}
		return out
	}
}

// SmoothFromSDF2 returns the logistic of the sdfx shape's distance:
// 0.5 on the boundary, approaching 1 inside and 0 outside over the
// given transition width.
func SmoothFromSDF2(s sdf.SDF2, width float64) (field.Func, error) {
	if !(width > 0) {
		return nil, fmt.Errorf("width %g: %w", width, field.ErrInvalidWidth)
	}
	return func(x, y []float64) []float64 {
		out := make([]float64, len(x))
		for i := range x {
			d := s.Evaluate(v2.Vec{X: x[i], Y: y[i]})
			out[i] = 1 / (1 + math.Exp(d/width))
		}
		return out
	}, nil
}

// Bounds returns the sdfx shape's bounding box as a geom.Box, the
// natural bounding box for a raster device built on the shape.
func Bounds(s sdf.SDF2) geom.Box {
	bb := s.BoundingBox()
	return geom.NewBox(bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
}
