package sdf

import (
	"fmt"
	"math"

	"github.com/stanfordnqp/udon/pkg/geom"
)

// Shape is a validated set of boundary polygons ready for distance
// queries. It is immutable after construction and safe for concurrent
// use.
type Shape struct {
	polys []geom.Polygon
}

// NewShape validates the polygon set and returns a queryable shape.
// Each polygon needs at least three vertices; zero-length edges are
// tolerated and skipped during queries.
func NewShape(polys ...geom.Polygon) (*Shape, error) {
	if len(polys) == 0 {
		return nil, ErrNoPolygons
	}
	for i, p := range polys {
		if len(p) < 3 {
			return nil, fmt.Errorf("polygon %d has %d vertices: %w", i, len(p), ErrMalformedPolygon)
		}
	}
	return &Shape{polys: polys}, nil
}

// Polygons returns the shape's polygon set. Callers must not modify it.
func (s *Shape) Polygons() []geom.Polygon {
	return s.polys
}

// Distance returns the signed distance from each (x[i], y[i]) to the
// shape boundary: negative inside, positive outside, zero on an edge.
// It panics if len(x) != len(y); use the package-level Distance for a
// checked entry point.
func (s *Shape) Distance(x, y []float64) []float64 {
	if len(x) != len(y) {
		panic(fmt.Sprintf("sdf: len(x)=%d len(y)=%d", len(x), len(y)))
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = s.DistanceAt(x[i], y[i])
	}
	return out
}

// DistanceAt returns the signed distance from a single point to the
// shape boundary.
func (s *Shape) DistanceAt(x, y float64) float64 {
	best := math.Inf(1)
	winding := 0
	for _, poly := range s.polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			ex := b.X - a.X
			ey := b.Y - a.Y
			if ex == 0 && ey == 0 {
				continue // degenerate edge
			}

			// Distance to the segment a-b.
			vx := x - a.X
			vy := y - a.Y
			t := (vx*ex + vy*ey) / (ex*ex + ey*ey)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			dx := vx - t*ex
			dy := vy - t*ey
			if d2 := dx*dx + dy*dy; d2 < best {
				best = d2
			}

			// Nonzero winding number (Sunday's crossing rules).
			if a.Y <= y {
				if b.Y > y && ex*vy-ey*vx > 0 {
					winding++
				}
			} else {
				if b.Y <= y && ex*vy-ey*vx < 0 {
					winding--
				}
			}
		}
	}
	d := math.Sqrt(best)
	if winding != 0 {
		return -d
	}
	return d
}

// Distance is the standalone vectorized entry point: signed distances
// from the points (x, y) to the polygon set, independent of any
// hierarchy. Negative values are inside under the nonzero winding
// rule.
func Distance(polys []geom.Polygon, x, y []float64) ([]float64, error) {
	s, err := NewShape(polys...)
	if err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("len(x)=%d len(y)=%d: %w", len(x), len(y), ErrShapeMismatch)
	}
	return s.Distance(x, y), nil
}

// DistanceAt is the scalar form of Distance.
func DistanceAt(polys []geom.Polygon, x, y float64) (float64, error) {
	s, err := NewShape(polys...)
	if err != nil {
		return 0, err
	}
	return s.DistanceAt(x, y), nil
}
