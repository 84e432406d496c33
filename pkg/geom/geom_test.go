package geom

import "testing"

func TestNewBoxNormalizesCorners(t *testing.T) {
	b := NewBox(3, 4, 1, 2)
	if b.Min.X != 1 || b.Min.Y != 2 || b.Max.X != 3 || b.Max.Y != 4 {
		t.Errorf("box = %+v, want min (1,2) max (3,4)", b)
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(0, 0, 1, 1)
	cases := []struct {
		x, y float64
		want bool
	}{
		{0.5, 0.5, true},
		{0, 0, true}, // boundary points are inside
		{1, 1, true},
		{1.0001, 0.5, false},
		{0.5, -0.0001, false},
	}
	for _, c := range cases {
		if got := b.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%g, %g) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestBoxUnion(t *testing.T) {
	got := NewBox(0, 0, 1, 1).Union(NewBox(-2, 0.5, 0.5, 3))
	want := NewBox(-2, 0, 1, 3)
	if got != want {
		t.Errorf("union = %+v, want %+v", got, want)
	}
}

func TestSignedArea(t *testing.T) {
	ccw := Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if a := ccw.SignedArea(); a != 1 {
		t.Errorf("CCW unit square area = %g, want 1", a)
	}
	cw := Polygon{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if a := cw.SignedArea(); a != -1 {
		t.Errorf("CW unit square area = %g, want -1", a)
	}
}

func TestPolygonBounds(t *testing.T) {
	p := Polygon{{1, -2}, {3, 5}, {-4, 0}}
	want := NewBox(-4, -2, 3, 5)
	if got := p.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
	if got := (Polygon{}).Bounds(); got != (Box{}) {
		t.Errorf("empty polygon bounds = %+v, want zero box", got)
	}
}
