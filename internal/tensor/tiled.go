package tensor

import (
	"github.com/bikshand/tilelib/internal/layout"
)

// Tile is an ephemeral descriptor for one hyper-rectangular sub-region:
// a start coordinate and a per-dimension length. Edge tiles are clipped
// to the base extents, so lengths may be smaller than the tiler's.
type Tile struct {
	start  []int
	length []int
}

// Start returns the tile's start coordinate along dimension d.
func (t Tile) Start(d int) int { return t.start[d] }

// Len returns the tile's length along dimension d.
func (t Tile) Len(d int) int { return t.length[d] }

// NDim returns the tile's dimensionality.
func (t Tile) NDim() int { return len(t.start) }

// Starts returns the full start coordinate vector.
func (t Tile) Starts() []int { return t.start }

// Lens returns the full length vector.
func (t Tile) Lens() []int { return t.length }

// tileIter walks tile start positions over raw extents, advancing the
// multi-index by the tile extent per dimension and carrying into higher
// dimensions on overflow. Each emitted tile is clipped to the remaining
// extent, so boundary tiles are undersized rather than dropped. The
// iterator is finite and single-pass.
type tileIter struct {
	tileShape []int
	fullShape []int
	current   []int
	done      bool
}

func newTileIter(tileShape, fullShape []int) *tileIter {
	it := &tileIter{
		tileShape: tileShape,
		fullShape: fullShape,
		current:   make([]int, len(tileShape)),
	}
	for _, d := range fullShape {
		if d <= 0 {
			it.done = true
		}
	}
	return it
}

func (it *tileIter) next() (Tile, bool) {
	if it.done {
		return Tile{}, false
	}
	start := make([]int, len(it.current))
	copy(start, it.current)
	length := make([]int, len(start))
	for d := range start {
		remaining := it.fullShape[d] - start[d]
		length[d] = it.tileShape[d]
		if remaining < length[d] {
			length[d] = remaining
		}
	}
	carried := true
	for d := len(it.current) - 1; d >= 0; d-- {
		it.current[d] += it.tileShape[d]
		if it.current[d] < it.fullShape[d] {
			carried = false
			break
		}
		it.current[d] = 0
	}
	if carried {
		it.done = true
	}
	return Tile{start: start, length: length}, true
}

// Tiled partitions a view into a lazy, single-pass sequence of
// (Tile, sub-view) pairs. Tiles are pairwise disjoint in index space by
// construction: starts advance by whole tile extents and lengths are
// clipped to the base extents, so the tiles exactly cover the view with
// no overlap. That disjointness is what makes per-tile processing safe
// to parallelize externally; this package performs no dispatch itself.
type Tiled[T any] struct {
	base  View[T]
	tiler layout.Layout
	iter  *tileIter
}

// NewTiled builds the tile sequence a tiler induces over base. The
// iteration space comes from FlatDivide; iteration runs over the full
// base extents rather than the grid quotients, so ragged edges are
// clipped, not excluded.
func NewTiled[T any](base View[T], tiler layout.Layout) *Tiled[T] {
	tileDims := tileExtents(base.Layout(), tiler)
	return &Tiled[T]{
		base:  base,
		tiler: tiler,
		iter:  newTileIter(tileDims, base.Layout().Shape().Flatten()),
	}
}

// Next returns the next tile and its zero-copy sub-view, or ok=false
// once the partition is exhausted.
func (tv *Tiled[T]) Next() (Tile, View[T], bool) {
	tile, ok := tv.iter.next()
	if !ok {
		return Tile{}, View[T]{}, false
	}
	off, l := flatSubLayout(tv.base.Layout(), tile.start, tile.length)
	return tile, View[T]{data: tv.base.data[off:], layout: l}, true
}

// TiledMut is the mutable counterpart of Tiled. The disjointness of the
// produced sub-views is the property that makes handing each one to a
// different worker sound.
type TiledMut[T any] struct {
	base  MutView[T]
	tiler layout.Layout
	iter  *tileIter
}

// NewTiledMut builds the mutable tile sequence a tiler induces over
// base.
func NewTiledMut[T any](base MutView[T], tiler layout.Layout) *TiledMut[T] {
	tileDims := tileExtents(base.Layout(), tiler)
	return &TiledMut[T]{
		base:  base,
		tiler: tiler,
		iter:  newTileIter(tileDims, base.Layout().Shape().Flatten()),
	}
}

// Next returns the next tile and its mutable zero-copy sub-view, or
// ok=false once the partition is exhausted.
func (tv *TiledMut[T]) Next() (Tile, MutView[T], bool) {
	tile, ok := tv.iter.next()
	if !ok {
		return Tile{}, MutView[T]{}, false
	}
	off, l := flatSubLayout(tv.base.Layout(), tile.start, tile.length)
	return tile, MutView[T]{data: tv.base.data[off:], layout: l}, true
}

// tileExtents splits the flat divide of (base, tiler) at the tiler's
// flat rank and keeps the tile extents. The split also validates tree
// congruence between base and tiler up front.
func tileExtents(base, tiler layout.Layout) []int {
	flat := layout.FlatDivide(base, tiler)
	t := tiler.Shape().FlatLen()
	return flat.Shape().Flatten()[:t]
}

// flatSubLayout anchors a flat start/length box against the base
// layout. The base's stride tree is inherited in flattened pre-order,
// which coincides with the tree itself for flat-leaf layouts and keeps
// nested layouts addressable by flat tile coordinates.
func flatSubLayout(base layout.Layout, start, length []int) (int, layout.Layout) {
	strides := base.Stride().Flatten()
	off := 0
	for i, s := range start {
		off += s * strides[i]
	}
	sub := layout.WithShapeStride(
		layout.NewShape(layout.IntsOf(length)),
		layout.NewStride(layout.IntsOf(strides)),
	)
	return off, sub
}
