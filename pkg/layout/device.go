package layout

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stanfordnqp/udon/pkg/deraster"
	"github.com/stanfordnqp/udon/pkg/field"
	"github.com/stanfordnqp/udon/pkg/geom"
)

// NewRasterDevice builds a raster device and wraps it as a reference
// inside a plain cell. The device is derasterized once at
// construction: its 0.5-level polygons, tagged with spec, live on the
// device cell next to the live field definition, so boundary-only
// consumers read the frozen polygons while rasterization consumers
// recover the exact continuous definition.
//
// The wrapper cell is what callers place and transform; keeping the
// raster device behind a reference discourages operating on it
// directly. An empty name gets a generated one.
func NewRasterDevice(name string, spec LayerSpec, fn field.Func, bbox geom.Box, resolution float64) (*Cell, error) {
	return PlaceRasterDevice(name, geom.Identity(), spec, fn, bbox, resolution)
}

// PlaceRasterDevice is NewRasterDevice with a placement frame on the
// wrapper's reference, so the returned cell already locates the
// device relative to its eventual parent.
func PlaceRasterDevice(name string, frame geom.Frame, spec LayerSpec, fn field.Func, bbox geom.Box, resolution float64) (*Cell, error) {
	if fn == nil {
		return nil, ErrNilRasterFunc
	}
	if name == "" {
		name = "raster-" + uuid.NewString()[:8]
	}

	def := &RasterDef{Fn: fn, BBox: bbox, Resolution: resolution, Spec: spec}
	polys, err := def.Deraster()
	if err != nil {
		return nil, fmt.Errorf("layout: derasterize %s: %w", name, err)
	}

	device := &Cell{Name: name + "_raster", Raster: def}
	for _, p := range polys {
		device.AddElement(spec, p)
	}

	wrapper := NewCell(name)
	wrapper.AddRef(device, frame)
	return wrapper, nil
}

// Deraster extracts the device's boundary polygons in its local
// frame: the 0.5-level contour of the field sampled no coarser than
// the configured resolution. A field uniformly above or below the
// threshold yields an empty set.
func (d *RasterDef) Deraster() ([]geom.Polygon, error) {
	return deraster.Deraster(d.Fn, d.BBox, d.Resolution)
}
