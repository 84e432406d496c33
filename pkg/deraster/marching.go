package deraster

import (
	"sort"

	"github.com/stanfordnqp/udon/pkg/geom"
)

// edgeKey identifies a grid edge: the edge from sample (ix, iy) to
// (ix+1, iy) when horizontal, or to (ix, iy+1) when vertical. Contour
// vertices live on crossed grid edges, so chaining segments by edge
// identity avoids floating-point keying entirely.
type edgeKey struct {
	ix, iy   int
	vertical bool
}

// marchingSquares extracts the closed level-set loops of the sampled
// grid. Segments are directed so that the region >= level lies to the
// left of travel, which makes outer boundaries counter-clockwise and
// holes clockwise. Saddle cells are disambiguated by the cell-center
// mean.
func marchingSquares(xs, ys, vals []float64, level float64) [][]geom.Vec2 {
	nx := len(xs)
	ny := len(ys)
	val := func(ix, iy int) float64 { return vals[ix*ny+iy] }

	// next[from] = to for every directed contour segment.
	next := make(map[edgeKey]edgeKey)
	link := func(from, to edgeKey) { next[from] = to }

	for ix := 0; ix < nx-1; ix++ {
		for iy := 0; iy < ny-1; iy++ {
			v00 := val(ix, iy)     // bottom-left
			v10 := val(ix+1, iy)   // bottom-right
			v11 := val(ix+1, iy+1) // top-right
			v01 := val(ix, iy+1)   // top-left

			code := 0
			if v00 >= level {
				code |= 1
			}
			if v10 >= level {
				code |= 2
			}
			if v11 >= level {
				code |= 4
			}
			if v01 >= level {
				code |= 8
			}
			if code == 0 || code == 15 {
				continue
			}

			bottom := edgeKey{ix, iy, false}
			right := edgeKey{ix + 1, iy, true}
			top := edgeKey{ix, iy + 1, false}
			left := edgeKey{ix, iy, true}

			switch code {
			case 1: // bottom-left corner inside
				link(bottom, left)
			case 2: // bottom-right
				link(right, bottom)
			case 4: // top-right
				link(top, right)
			case 8: // top-left
				link(left, top)
			case 3: // bottom half
				link(right, left)
			case 6: // right half
				link(top, bottom)
			case 12: // top half
				link(left, right)
			case 9: // left half
				link(bottom, top)
			case 7: // all but top-left
				link(top, left)
			case 14: // all but bottom-left
				link(left, bottom)
			case 13: // all but bottom-right
				link(bottom, right)
			case 11: // all but top-right
				link(right, top)
			case 5: // bottom-left and top-right: saddle
				if (v00+v10+v11+v01)/4 >= level {
					link(bottom, right)
					link(top, left)
				} else {
					link(bottom, left)
					link(top, right)
				}
			case 10: // bottom-right and top-left: saddle
				if (v00+v10+v11+v01)/4 >= level {
					link(left, bottom)
					link(right, top)
				} else {
					link(right, bottom)
					link(left, top)
				}
			}
		}
	}

	// Interpolated position of the crossing on a grid edge.
	pos := func(e edgeKey) geom.Vec2 {
		va := val(e.ix, e.iy)
		if e.vertical {
			vb := val(e.ix, e.iy+1)
			t := (level - va) / (vb - va)
			return geom.Vec2{X: xs[e.ix], Y: ys[e.iy] + t*(ys[e.iy+1]-ys[e.iy])}
		}
		vb := val(e.ix+1, e.iy)
		t := (level - va) / (vb - va)
		return geom.Vec2{X: xs[e.ix] + t*(xs[e.ix+1]-xs[e.ix]), Y: ys[e.iy]}
	}

	// Walk loops from the lexicographically smallest unvisited edge so
	// output order is deterministic.
	starts := make([]edgeKey, 0, len(next))
	for k := range next {
		starts = append(starts, k)
	}
	sort.Slice(starts, func(i, j int) bool {
		a, b := starts[i], starts[j]
		if a.ix != b.ix {
			return a.ix < b.ix
		}
		if a.iy != b.iy {
			return a.iy < b.iy
		}
		return !a.vertical && b.vertical
	})

	visited := make(map[edgeKey]bool, len(next))
	var loops [][]geom.Vec2
	for _, start := range starts {
		if visited[start] {
			continue
		}
		var loop []geom.Vec2
		k := start
		for {
			visited[k] = true
			loop = append(loop, pos(k))
			to, ok := next[k]
			if !ok || to == start {
				break
			}
			k = to
		}
		loops = append(loops, loop)
	}
	return loops
}
