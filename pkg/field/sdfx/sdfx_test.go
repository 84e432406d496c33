package sdfx

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
)

func TestFromSDF2Circle(t *testing.T) {
	circle, err := sdf.Circle2D(1.0)
	if err != nil {
		t.Fatalf("Circle2D: %v", err)
	}
	f := FromSDF2(circle)
	vals := f([]float64{0, 0.9, 2}, []float64{0, 0, 0})
	want := []float64{1, 1, 0}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("value[%d] = %g, want %g", i, vals[i], want[i])
		}
	}
}

func TestSmoothFromSDF2(t *testing.T) {
	circle, err := sdf.Circle2D(1.0)
	if err != nil {
		t.Fatalf("Circle2D: %v", err)
	}
	f, err := SmoothFromSDF2(circle, 0.05)
	if err != nil {
		t.Fatalf("SmoothFromSDF2: %v", err)
	}
	if got := f([]float64{1}, []float64{0})[0]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("on boundary = %g, want 0.5", got)
	}
	if got := f([]float64{0}, []float64{0})[0]; got < 0.99 {
		t.Errorf("center = %g, want near 1", got)
	}

	if _, err := SmoothFromSDF2(circle, -1); err == nil {
		t.Error("negative width should fail")
	}
}

func TestBounds(t *testing.T) {
	circle, err := sdf.Circle2D(2.0)
	if err != nil {
		t.Fatalf("Circle2D: %v", err)
	}
	b := Bounds(circle)
	if b.Min.X > -2+1e-9 || b.Max.X < 2-1e-9 || b.Min.Y > -2+1e-9 || b.Max.Y < 2-1e-9 {
		t.Errorf("bounds %+v do not cover the radius-2 circle", b)
	}
}
