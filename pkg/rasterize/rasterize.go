// Package rasterize flattens a design hierarchy into a single
// world-space field. Boundary polygons are rasterized through their
// signed distance; raster devices contribute their local fields
// pulled through the accumulated placement frames; contributions fuse
// under a configurable combinator. The resulting field imposes no
// resolution and no bounding region: callers pick sample points
// freely, which keeps evaluation lazy and trivially partitionable
// across workers.
package rasterize

import (
	"fmt"

	"github.com/stanfordnqp/udon/pkg/field"
	"github.com/stanfordnqp/udon/pkg/geom"
	"github.com/stanfordnqp/udon/pkg/layout"
)

// Field returns the lazy world-space field of everything tagged with
// spec under root, with rootFrame locating root in world coordinates.
// The field depends only on the geometry: evaluating it on disjoint
// coordinate subsets and concatenating equals evaluating it once on
// the union.
func Field(root *layout.Cell, rootFrame geom.Frame, spec layout.LayerSpec, opts ...Option) (field.Func, error) {
	cfg := newConfig(opts)

	var leaves []leaf

	if polys := layout.FlattenPolygons(root, rootFrame, spec); len(polys) > 0 {
		var (
			bf  field.Func
			err error
		)
		if cfg.smoothWidth > 0 {
			bf, err = field.SmoothFromPolygons(polys, cfg.smoothWidth)
		} else {
			bf, err = field.FromPolygons(polys)
		}
		if err != nil {
			return nil, fmt.Errorf("rasterize: boundary polygons: %w", err)
		}
		leaves = append(leaves, leaf{
			fn:     bf,
			bounds: polygonsBounds(polys),
			// The smoothed indicator decays but never reaches zero, so
			// it must not be culled by bounding box.
			unbounded: cfg.smoothWidth > 0,
		})
	}

	for _, p := range layout.ExtractRaster(root, rootFrame) {
		if p.Def.Spec != spec {
			continue
		}
		fn := field.Bounded(p.Def.Fn, p.Def.BBox)
		if cfg.clamp {
			fn = field.Clamp01(fn)
		}
		leaves = append(leaves, leaf{
			fn:     field.Transformed(fn, p.Frame),
			bounds: p.Def.BBox.Transform(p.Frame),
		})
	}

	if cfg.culling {
		return culledField(cfg.combiner, leaves)
	}
	fns := make([]field.Func, len(leaves))
	for i, l := range leaves {
		fns[i] = l.fn
	}
	return field.Combine(cfg.combiner, fns...), nil
}

// Raster evaluates the hierarchy's world field at the given points.
func Raster(root *layout.Cell, rootFrame geom.Frame, spec layout.LayerSpec, x, y []float64, opts ...Option) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("len(x)=%d len(y)=%d: %w", len(x), len(y), ErrCoordMismatch)
	}
	f, err := Field(root, rootFrame, spec, opts...)
	if err != nil {
		return nil, err
	}
	return f(x, y), nil
}

func polygonsBounds(polys []geom.Polygon) geom.Box {
	b := polys[0].Bounds()
	for _, p := range polys[1:] {
		b = b.Union(p.Bounds())
	}
	return b
}
