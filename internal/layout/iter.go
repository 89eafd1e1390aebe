package layout

// GridIter lazily enumerates a cartesian product of grid dimensions in
// row-major (rightmost-fastest) lexicographic order via a ripple
// counter. Each emitted coordinate is scaled elementwise by a per-dim
// multiplier, so a grid of tile quotients enumerates tile start
// coordinates. The iterator is single-pass and not restartable.
type GridIter struct {
	dims    []int
	scale   []int
	current []int
	done    bool
}

// NewGridIter builds an unscaled iterator over dims. A zero dimension
// yields an empty sequence.
func NewGridIter(dims []int) *GridIter {
	return newGridIter(dims, nil)
}

func newGridIter(dims, scale []int) *GridIter {
	it := &GridIter{
		dims:    dims,
		scale:   scale,
		current: make([]int, len(dims)),
	}
	for _, d := range dims {
		if d <= 0 {
			it.done = true
		}
	}
	return it
}

// Next returns the next coordinate, or ok=false once the product of
// the grid dimensions has been exhausted. The returned slice is owned
// by the caller.
func (it *GridIter) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	out := make([]int, len(it.current))
	for i, v := range it.current {
		if it.scale != nil {
			out[i] = v * it.scale[i]
		} else {
			out[i] = v
		}
	}
	// ripple the counter, rightmost dimension fastest
	carried := true
	for i := len(it.current) - 1; i >= 0; i-- {
		it.current[i]++
		if it.current[i] < it.dims[i] {
			carried = false
			break
		}
		it.current[i] = 0
	}
	if carried {
		it.done = true
	}
	return out, true
}

// TileIter enumerates the start coordinates of the full tiles a tiler
// induces over the layout, in row-major order. The grid extents are
// the integer quotients extent/tile per dimension, so a trailing
// remainder along any dimension is silently excluded; RestIter reports
// it instead. This asymmetry is a deliberate property of the grid-only
// policy, distinct from the ragged tiling in the tensor package.
func (l Layout) TileIter(tiler Layout) *GridIter {
	flat := FlatDivide(l, tiler)
	t := tiler.Shape().FlatLen()
	dims := flat.Shape().Flatten()
	return newGridIter(dims[t:], dims[:t])
}

// RestIter yields the start coordinate of the single leftover remainder
// block the grid-only policy excludes, or nothing when every dimension
// divides exactly. Along dimensions that do divide exactly the block
// start is 0, so the block spans the full extent there.
type RestIter struct {
	start []int
	done  bool
}

// RestIter builds the remainder iterator for a tiler over the layout.
func (l Layout) RestIter(tiler Layout) *RestIter {
	extents := l.Shape().Flatten()
	tiles := tiler.Shape().Flatten()
	if len(extents) != len(tiles) {
		panic("layout: tiler rank mismatch in RestIter")
	}
	start := make([]int, len(extents))
	any := false
	for i, e := range extents {
		if e%tiles[i] != 0 {
			start[i] = (e / tiles[i]) * tiles[i]
			any = true
		}
	}
	return &RestIter{start: start, done: !any}
}

// Next returns the remainder-block start, or ok=false when there is no
// remainder or it has already been consumed.
func (it *RestIter) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	it.done = true
	return it.start, true
}
