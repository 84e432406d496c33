package rasterize

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/stanfordnqp/udon/pkg/field"
	"github.com/stanfordnqp/udon/pkg/geom"
)

// pointTol is the half-width of the query rectangle around a sample
// point, so points exactly on a leaf's bounding box edge still hit it.
const pointTol = 1e-9

// leaf is one contribution to the combined field: a world-space
// field and the world bounding box outside of which it is zero.
type leaf struct {
	fn        field.Func
	bounds    geom.Box
	unbounded bool // never cull (nonzero everywhere)
}

// culledLeaf wraps a leaf as an R-tree entry.
type culledLeaf struct {
	leaf
	index int // position in fusion order
	rect  rtreego.Rect
}

func (l *culledLeaf) Bounds() rtreego.Rect { return l.rect }

// culledField folds leaves exactly like field.Combine, but evaluates a
// bounded leaf only at the sample points its world box can touch. A
// skipped leaf still folds in as the zero it is known to hold there,
// so the result matches the unculled fold for every combinator.
func culledField(op field.Combiner, leaves []leaf) (field.Func, error) {
	if len(leaves) == 0 {
		return field.Uniform(0), nil
	}

	tree := rtreego.NewTree(2, 2, 8)
	entries := make([]*culledLeaf, 0, len(leaves))
	var always []*culledLeaf
	for i, l := range leaves {
		e := &culledLeaf{leaf: l, index: i}
		if l.unbounded {
			always = append(always, e)
			entries = append(entries, e)
			continue
		}
		w := max(l.bounds.Width(), pointTol)
		h := max(l.bounds.Height(), pointTol)
		rect, err := rtreego.NewRect(rtreego.Point{l.bounds.Min.X, l.bounds.Min.Y}, []float64{w, h})
		if err != nil {
			return nil, fmt.Errorf("rasterize: leaf %d bounds: %w", i, err)
		}
		e.rect = rect
		tree.Insert(e)
		entries = append(entries, e)
	}

	return func(x, y []float64) []float64 {
		acc := make([]float64, len(x))

		// Gather, per leaf, the sample indices it can contribute to.
		hits := make([][]int, len(entries))
		for _, e := range always {
			hits[e.index] = make([]int, len(x))
			for i := range x {
				hits[e.index][i] = i
			}
		}
		for i := range x {
			q := rtreego.Point{x[i], y[i]}.ToRect(pointTol)
			for _, sp := range tree.SearchIntersect(q) {
				e := sp.(*culledLeaf)
				hits[e.index] = append(hits[e.index], i)
			}
		}

		// Leaf 0 seeds the accumulator, each later leaf folds in per
		// point. Hit indices are ascending, so a single cursor merges
		// the evaluated values with the zeros of the skipped points.
		for li, idxs := range hits {
			var vals []float64
			if len(idxs) > 0 {
				lx := make([]float64, len(idxs))
				ly := make([]float64, len(idxs))
				for j, i := range idxs {
					lx[j] = x[i]
					ly[j] = y[i]
				}
				vals = entries[li].fn(lx, ly)
			}
			if li == 0 {
				for j, i := range idxs {
					acc[i] = vals[j]
				}
				continue
			}
			k := 0
			for i := range acc {
				v := 0.0
				if k < len(idxs) && idxs[k] == i {
					v = vals[k]
					k++
				}
				acc[i] = op(acc[i], v)
			}
		}
		return acc
	}, nil
}
