package geom

// Vec2 is a point or direction in the plane.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Polygon is a closed polygon given as an ordered vertex sequence.
// The last vertex connects back to the first; the closing vertex is
// not repeated.
type Polygon []Vec2

// Transform returns a copy of the polygon with every vertex mapped
// through the frame's forward transform.
func (p Polygon) Transform(f Frame) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		x, y := f.Forward(v.X, v.Y)
		out[i] = Vec2{x, y}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the polygon.
// A polygon with no vertices yields the zero Box.
func (p Polygon) Bounds() Box {
	if len(p) == 0 {
		return Box{}
	}
	b := Box{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		if v.X < b.Min.X {
			b.Min.X = v.X
		}
		if v.Y < b.Min.Y {
			b.Min.Y = v.Y
		}
		if v.X > b.Max.X {
			b.Max.X = v.X
		}
		if v.Y > b.Max.Y {
			b.Max.Y = v.Y
		}
	}
	return b
}

// SignedArea returns the signed area of the polygon: positive for
// counter-clockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// NewBox returns the box spanning the two corner points, normalizing
// the corner order.
func NewBox(x0, y0, x1, y1 float64) Box {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Box{Min: Vec2{x0, y0}, Max: Vec2{x1, y1}}
}

// Width returns the extent of the box along X.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the extent of the box along Y.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Area returns the area of the box.
func (b Box) Area() float64 { return b.Width() * b.Height() }

// Contains reports whether (x, y) lies inside the box. Points on the
// boundary are inside.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// Union returns the smallest box containing both b and c.
func (b Box) Union(c Box) Box {
	out := b
	if c.Min.X < out.Min.X {
		out.Min.X = c.Min.X
	}
	if c.Min.Y < out.Min.Y {
		out.Min.Y = c.Min.Y
	}
	if c.Max.X > out.Max.X {
		out.Max.X = c.Max.X
	}
	if c.Max.Y > out.Max.Y {
		out.Max.Y = c.Max.Y
	}
	return out
}

// Transform returns the axis-aligned bounding box of the four box
// corners mapped through the frame's forward transform.
func (b Box) Transform(f Frame) Box {
	x0, y0 := f.Forward(b.Min.X, b.Min.Y)
	x1, y1 := f.Forward(b.Max.X, b.Min.Y)
	x2, y2 := f.Forward(b.Max.X, b.Max.Y)
	x3, y3 := f.Forward(b.Min.X, b.Max.Y)
	return NewBox(
		min4(x0, x1, x2, x3), min4(y0, y1, y2, y3),
		max4(x0, x1, x2, x3), max4(y0, y1, y2, y3),
	)
}

func min4(a, b, c, d float64) float64 { return min(min(a, b), min(c, d)) }
func max4(a, b, c, d float64) float64 { return max(max(a, b), max(c, d)) }
