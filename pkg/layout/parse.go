package layout

import "github.com/stanfordnqp/udon/pkg/geom"

// Placement is a raster device definition paired with the frame
// accumulated from the hierarchy root down to the device.
type Placement struct {
	Def   *RasterDef
	Frame geom.Frame
}

// ExtractRaster walks the hierarchy depth-first and returns every
// raster device with its accumulated placement frame. The traversal
// is read-only; a device placed several times appears once per
// placement, each with its own frame.
func ExtractRaster(root *Cell, frame geom.Frame) []Placement {
	if root == nil {
		return nil
	}
	var out []Placement
	if root.Raster != nil {
		out = append(out, Placement{Def: root.Raster, Frame: frame})
	}
	for _, r := range root.Refs {
		out = append(out, ExtractRaster(r.Cell, frame.Compose(r.Frame))...)
	}
	return out
}

// FlattenPolygons returns the world-space boundary polygons tagged
// with spec across the whole hierarchy, transforming vertices by the
// accumulated frames. Raster device cells are skipped entirely: their
// frozen derastered polygons re-enter rasterization through the live
// field instead, never both.
func FlattenPolygons(root *Cell, frame geom.Frame, spec LayerSpec) []geom.Polygon {
	if root == nil || root.Raster != nil {
		return nil
	}
	var out []geom.Polygon
	for _, e := range root.Elements {
		if e.Spec == spec {
			out = append(out, e.Poly.Transform(frame))
		}
	}
	for _, r := range root.Refs {
		out = append(out, FlattenPolygons(r.Cell, frame.Compose(r.Frame), spec)...)
	}
	return out
}

// FlattenBoundary returns a single flat cell holding the world-space
// polygons of every layer, with raster devices replaced by their
// frozen derastered polygons. The result is a pure boundary hierarchy
// consumable by conventional boundary tooling.
func FlattenBoundary(root *Cell, frame geom.Frame) *Cell {
	flat := NewCell(root.Name + "_flat")
	flattenInto(flat, root, frame)
	return flat
}

func flattenInto(flat, c *Cell, frame geom.Frame) {
	if c == nil {
		return
	}
	// For raster cells the elements are the frozen polygon form; for
	// boundary cells they are the native polygons. Both export.
	for _, e := range c.Elements {
		flat.AddElement(e.Spec, e.Poly.Transform(frame))
	}
	for _, r := range c.Refs {
		flattenInto(flat, r.Cell, frame.Compose(r.Frame))
	}
}
