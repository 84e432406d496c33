package geom

import (
	"fmt"
	"math"
)

// degenerateEps is the determinant magnitude below which a linear part
// is treated as non-invertible.
const degenerateEps = 1e-12

// Frame is a 2D affine transform: a 2x2 linear part (rotation,
// reflection, magnification) plus a translation. Forward maps
// local coordinates to parent coordinates:
//
//	x' = a*x + b*y + tx
//	y' = c*x + d*y + ty
//
// Frames are immutable values. Re-transforming a placed node always
// produces a new frame; the node's local definition is never touched.
type Frame struct {
	a, b, c, d float64
	tx, ty     float64
}

// Identity returns the identity frame.
func Identity() Frame {
	return Frame{a: 1, d: 1}
}

// Translate returns a frame translating by (dx, dy).
func Translate(dx, dy float64) Frame {
	return Frame{a: 1, d: 1, tx: dx, ty: dy}
}

// Rotate returns a frame rotating counter-clockwise by the given angle
// in degrees.
func Rotate(degrees float64) Frame {
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	return Frame{a: cos, b: -sin, c: sin, d: cos}
}

// ReflectX returns a frame reflecting across the x axis (y -> -y).
func ReflectX() Frame {
	return Frame{a: 1, d: -1}
}

// Magnify returns a frame scaling uniformly by s. A magnification of
// zero is degenerate and rejected.
func Magnify(s float64) (Frame, error) {
	return New(s, 0, 0, s, 0, 0)
}

// Stretch returns a frame scaling by sx along X and sy along Y.
func Stretch(sx, sy float64) (Frame, error) {
	return New(sx, 0, 0, sy, 0, 0)
}

// New returns a frame with the given linear part and translation,
// rejecting a non-invertible linear part with ErrDegenerateTransform.
func New(a, b, c, d, tx, ty float64) (Frame, error) {
	f := Frame{a: a, b: b, c: c, d: d, tx: tx, ty: ty}
	if math.Abs(f.Det()) < degenerateEps {
		return Frame{}, fmt.Errorf("linear part [[%g %g] [%g %g]]: %w", a, b, c, d, ErrDegenerateTransform)
	}
	return f, nil
}

// Det returns the determinant of the linear part. A reflection has a
// negative determinant; rotations and positive magnifications keep it
// positive.
func (f Frame) Det() float64 {
	return f.a*f.d - f.b*f.c
}

// IsIdentity reports whether f is exactly the identity frame.
func (f Frame) IsIdentity() bool {
	return f == Identity()
}

// Forward maps a point from the frame's local coordinates to its
// parent coordinates.
func (f Frame) Forward(x, y float64) (float64, float64) {
	return f.a*x + f.b*y + f.tx, f.c*x + f.d*y + f.ty
}

// Inverse maps a point from parent coordinates back to the frame's
// local coordinates. Inverse(Forward(p)) == p within floating
// tolerance for every constructible frame.
func (f Frame) Inverse(x, y float64) (float64, float64) {
	det := f.Det()
	x -= f.tx
	y -= f.ty
	return (f.d*x - f.b*y) / det, (f.a*y - f.c*x) / det
}

// ForwardPoint is Forward on a Vec2.
func (f Frame) ForwardPoint(p Vec2) Vec2 {
	x, y := f.Forward(p.X, p.Y)
	return Vec2{x, y}
}

// InversePoint is Inverse on a Vec2.
func (f Frame) InversePoint(p Vec2) Vec2 {
	x, y := f.Inverse(p.X, p.Y)
	return Vec2{x, y}
}

// Compose returns the frame equivalent to applying inner first and
// then f. It maps inner-local coordinates to f's parent coordinates,
// so accumulating placement frames down a hierarchy is
//
//	world = root.Compose(child).Compose(grandchild)...
//
// Composition is associative and Identity().Compose(f) == f.
func (f Frame) Compose(inner Frame) Frame {
	return Frame{
		a:  f.a*inner.a + f.b*inner.c,
		b:  f.a*inner.b + f.b*inner.d,
		c:  f.c*inner.a + f.d*inner.c,
		d:  f.c*inner.b + f.d*inner.d,
		tx: f.a*inner.tx + f.b*inner.ty + f.tx,
		ty: f.c*inner.tx + f.d*inner.ty + f.ty,
	}
}

// Compose is the package-level form of Frame.Compose: the returned
// frame applies inner first, then outer.
func Compose(outer, inner Frame) Frame {
	return outer.Compose(inner)
}
