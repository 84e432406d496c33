package layout

import (
	"github.com/stanfordnqp/udon/pkg/field"
	"github.com/stanfordnqp/udon/pkg/geom"
)

// LayerSpec tags geometry with a layer/datatype pair for boundary
// export.
type LayerSpec struct {
	Layer    int `json:"layer"`
	Datatype int `json:"datatype"`
}

// Element is a boundary polygon tagged with its layer.
type Element struct {
	Spec LayerSpec    `json:"spec"`
	Poly geom.Polygon `json:"poly"`
}

// Ref places a child cell inside a parent under an affine frame.
// The frame maps the child's local coordinates into the parent's.
type Ref struct {
	Cell  *Cell      `json:"cell"`
	Frame geom.Frame `json:"-"`
}

// Cell is a node of the design hierarchy: boundary polygons plus
// references to child cells. A cell with a non-nil Raster is a raster
// device; its Elements hold the frozen derastered polygons and its
// Raster holds the live continuous definition.
type Cell struct {
	Name     string     `json:"name"`
	Elements []Element  `json:"elements,omitempty"`
	Refs     []Ref      `json:"refs,omitempty"`
	Raster   *RasterDef `json:"-"`
}

// RasterDef is the local definition of a raster device. It is fixed
// at construction and never mutated; transformations are represented
// purely as reference frames applied where the device is placed.
type RasterDef struct {
	Fn         field.Func
	BBox       geom.Box
	Resolution float64
	Spec       LayerSpec
}

// NewCell returns an empty cell with the given name.
func NewCell(name string) *Cell {
	return &Cell{Name: name}
}

// AddElement appends a tagged polygon to the cell.
func (c *Cell) AddElement(spec LayerSpec, poly geom.Polygon) {
	c.Elements = append(c.Elements, Element{Spec: spec, Poly: poly})
}

// AddRef places child inside c under the given frame.
func (c *Cell) AddRef(child *Cell, frame geom.Frame) {
	c.Refs = append(c.Refs, Ref{Cell: child, Frame: frame})
}

// PolygonsBySpec returns the cell's own polygons tagged with spec,
// without descending into references.
func (c *Cell) PolygonsBySpec(spec LayerSpec) []geom.Polygon {
	var out []geom.Polygon
	for _, e := range c.Elements {
		if e.Spec == spec {
			out = append(out, e.Poly)
		}
	}
	return out
}
