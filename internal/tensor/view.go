package tensor

import (
	"github.com/bikshand/tilelib/internal/layout"
)

// View is a non-owning read window into a tensor's buffer: a base
// offset (folded into the slice) plus a Layout. Views are cheap value
// copies; any number of them may alias the same region.
type View[T any] struct {
	data   []T
	layout layout.Layout
}

// MutView is the mutable counterpart of View. Overlapping mutable
// views are forbidden by caller contract; the tiled partitioning in
// this package is the sanctioned way to obtain disjoint ones.
type MutView[T any] struct {
	data   []T
	layout layout.Layout
}

// Layout returns the view's layout.
func (v View[T]) Layout() layout.Layout { return v.layout }

// Data exposes the window's backing slice, starting at the view's base
// offset. Intended for lowering to numeric backends.
func (v View[T]) Data() []T { return v.data }

// Get returns the element at crd. The coordinate must be congruent
// with the view's stride tree.
func (v View[T]) Get(crd layout.Tuple) T {
	return v.data[v.layout.Crd2Idx(crd)]
}

// Subview returns a window of shape sub anchored at start. The offset
// is pure index arithmetic against the current layout and the stride
// tree is inherited unchanged, so sub-views of strided views remain
// correctly strided. No data is copied.
func (v View[T]) Subview(start layout.Tuple, sub layout.Shape) View[T] {
	off, l := subLayout(v.layout, start, sub)
	return View[T]{data: v.data[off:], layout: l}
}

// Subview2D is the rank-2 convenience form of Subview: an r x c window
// whose top-left corner is (r0, c0).
func (v View[T]) Subview2D(r0, c0, r, c int) View[T] {
	start, sub := coords2D(v.layout, r0, c0, r, c)
	return v.Subview(start, sub)
}

// Layout returns the view's layout.
func (v MutView[T]) Layout() layout.Layout { return v.layout }

// Data exposes the window's backing slice, starting at the view's base
// offset.
func (v MutView[T]) Data() []T { return v.data }

// Get returns the element at crd.
func (v MutView[T]) Get(crd layout.Tuple) T {
	return v.data[v.layout.Crd2Idx(crd)]
}

// Set stores val at crd.
func (v MutView[T]) Set(crd layout.Tuple, val T) {
	v.data[v.layout.Crd2Idx(crd)] = val
}

// Subview returns a mutable window of shape sub anchored at start.
func (v MutView[T]) Subview(start layout.Tuple, sub layout.Shape) MutView[T] {
	off, l := subLayout(v.layout, start, sub)
	return MutView[T]{data: v.data[off:], layout: l}
}

// Subview2D is the rank-2 convenience form of Subview.
func (v MutView[T]) Subview2D(r0, c0, r, c int) MutView[T] {
	start, sub := coords2D(v.layout, r0, c0, r, c)
	return v.Subview(start, sub)
}

// View downgrades a mutable view to a read view of the same window.
func (v MutView[T]) View() View[T] {
	return View[T]{data: v.data, layout: v.layout}
}

func subLayout(base layout.Layout, start layout.Tuple, sub layout.Shape) (int, layout.Layout) {
	off := base.Crd2Idx(start)
	return off, layout.WithShapeStride(sub, base.Stride())
}

// coords2D builds the start coordinate and sub-shape in whichever tree
// form the base layout uses, so congruence holds for both flat-leaf and
// nested rank-2 layouts.
func coords2D(base layout.Layout, r0, c0, r, c int) (layout.Tuple, layout.Shape) {
	if base.Shape().Dims().IsLeaf() {
		return layout.Ints(r0, c0), layout.NewShape(layout.Ints(r, c))
	}
	start := layout.Nest(layout.Ints(r0), layout.Ints(c0))
	sub := layout.NewShape(layout.Nest(layout.Ints(r), layout.Ints(c)))
	return start, sub
}
