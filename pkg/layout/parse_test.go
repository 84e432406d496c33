package layout

import (
	"math"
	"testing"

	"github.com/stanfordnqp/udon/pkg/field"
	"github.com/stanfordnqp/udon/pkg/geom"
)

func mustRasterDevice(t *testing.T, name string) *Cell {
	t.Helper()
	c, err := NewRasterDevice(name, testSpec, field.Uniform(0), geom.NewBox(0, 0, 1, 1), 0.1)
	if err != nil {
		t.Fatalf("NewRasterDevice: %v", err)
	}
	return c
}

func TestExtractRasterAccumulatesFrames(t *testing.T) {
	wrapper := mustRasterDevice(t, "d")

	mid := NewCell("mid")
	mid.AddRef(wrapper, geom.Rotate(90))

	root := NewCell("root")
	root.AddRef(mid, geom.Translate(10, 0))

	placements := ExtractRaster(root, geom.Identity())
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	// Accumulated frame: rotate 90 first (inner), then translate.
	x, y := placements[0].Frame.Forward(1, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("accumulated frame maps (1,0) to (%g, %g), want (10, 1)", x, y)
	}
}

func TestExtractRasterMultiplePlacements(t *testing.T) {
	wrapper := mustRasterDevice(t, "d")

	root := NewCell("root")
	root.AddRef(wrapper, geom.Translate(0, 0))
	root.AddRef(wrapper, geom.Translate(20, 0))

	placements := ExtractRaster(root, geom.Identity())
	if len(placements) != 2 {
		t.Fatalf("got %d placements, want 2", len(placements))
	}
	// Same frozen definition behind both placements.
	if placements[0].Def != placements[1].Def {
		t.Error("placements should share the single raster definition")
	}
	if placements[0].Frame == placements[1].Frame {
		t.Error("placements should carry distinct frames")
	}
}

func TestFlattenPolygonsSkipsRasterCells(t *testing.T) {
	square := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	// Raster device whose field fills the left half, so it carries a
	// frozen polygon that must NOT flatten as boundary geometry.
	device, err := NewRasterDevice("d", testSpec, halfPlane(0.5), geom.NewBox(0, 0, 1, 1), 0.1)
	if err != nil {
		t.Fatalf("NewRasterDevice: %v", err)
	}

	root := NewCell("root")
	root.AddElement(testSpec, square)
	root.AddRef(device, geom.Translate(3, 0))

	polys := FlattenPolygons(root, geom.Identity(), testSpec)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want only the native boundary square", len(polys))
	}
	if polys[0][0] != (geom.Vec2{X: 0, Y: 0}) {
		t.Errorf("unexpected polygon start %v", polys[0][0])
	}
}

func TestFlattenPolygonsTransformsAndFilters(t *testing.T) {
	square := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	otherSpec := LayerSpec{Layer: 7, Datatype: 7}

	child := NewCell("child")
	child.AddElement(testSpec, square)
	child.AddElement(otherSpec, square)

	root := NewCell("root")
	root.AddRef(child, geom.Translate(5, -1))

	polys := FlattenPolygons(root, geom.Identity(), testSpec)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1 (layer filter)", len(polys))
	}
	if got := polys[0][2]; got != (geom.Vec2{X: 6, Y: 0}) {
		t.Errorf("transformed vertex = %v, want (6, 0)", got)
	}
}

func TestFlattenBoundaryIncludesFrozenPolygons(t *testing.T) {
	device, err := NewRasterDevice("d", testSpec, halfPlane(0.5), geom.NewBox(0, 0, 1, 1), 0.1)
	if err != nil {
		t.Fatalf("NewRasterDevice: %v", err)
	}

	root := NewCell("root")
	root.AddElement(testSpec, geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	root.AddRef(device, geom.Translate(3, 0))

	flat := FlattenBoundary(root, geom.Identity())
	if len(flat.Refs) != 0 {
		t.Errorf("flat cell still has %d refs", len(flat.Refs))
	}
	polys := flat.PolygonsBySpec(testSpec)
	// Native square plus the device's frozen polygon.
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	// The frozen polygon landed in world coordinates.
	var foundShifted bool
	for _, p := range polys {
		if p.Bounds().Min.X >= 2.9 {
			foundShifted = true
		}
	}
	if !foundShifted {
		t.Error("frozen raster polygon was not transformed into world coordinates")
	}
}
