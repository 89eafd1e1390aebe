package layout

// Layout algebra: pure transforms from a (layout, tiler) pair to a new
// row-major-restriped layout describing the same tile/grid
// decomposition at progressively flatter granularity. The tiler is a
// layout used purely as a tile-size template; only its shape matters.

// LogicalDivide splits every dimension into an "inside tile" part and a
// "remainder" part: each matched (extent L, tile T) leaf pair becomes
// the two-element branch (T, L-T). The tiler must be congruent with the
// layout and every tile extent must not exceed its matched extent; the
// bound is not checked here, and violating it produces a negative
// remainder extent in the result.
func LogicalDivide(l, tiler Layout) Layout {
	return RowMajorLayout(NewShape(logicalDivideRec(l.Shape().Dims(), tiler.Shape().Dims())))
}

func logicalDivideRec(l, t Tuple) Tuple {
	if l.IsLeaf() != t.IsLeaf() {
		panic("layout: Tuple shape mismatch in LogicalDivide")
	}
	if l.IsLeaf() {
		ld := l.Leaf()
		td := t.Leaf()
		if len(ld) != len(td) {
			panic("layout: Tuple length mismatch in LogicalDivide")
		}
		subs := make([]Tuple, len(ld))
		for i, e := range ld {
			subs[i] = Ints(td[i], e-td[i])
		}
		return Tuple{subs: subs}
	}
	ls := l.Subs()
	ts := t.Subs()
	if len(ls) != len(ts) {
		panic("layout: Tuple arity mismatch in LogicalDivide")
	}
	subs := make([]Tuple, len(ls))
	for i, s := range ls {
		subs[i] = logicalDivideRec(s, ts[i])
	}
	return Tuple{subs: subs}
}

// ZippedDivide separates the decomposition into exactly two groups: a
// verbatim tile tree and a rest tree holding the integer quotient L/T
// per dimension. Exact divisibility is assumed; remainders are not
// represented at this level.
func ZippedDivide(l, tiler Layout) Layout {
	tile, rest := zippedDivideRec(l.Shape().Dims(), tiler.Shape().Dims())
	return RowMajorLayout(NewShape(Nest(tile, rest)))
}

func zippedDivideRec(l, t Tuple) (tile, rest Tuple) {
	if l.IsLeaf() != t.IsLeaf() {
		panic("layout: Tuple shape mismatch in ZippedDivide")
	}
	if l.IsLeaf() {
		ld := l.Leaf()
		td := t.Leaf()
		if len(ld) != len(td) {
			panic("layout: Tuple length mismatch in ZippedDivide")
		}
		quot := make([]int, len(ld))
		for i, e := range ld {
			quot[i] = e / td[i]
		}
		return Ints(td...), Tuple{ints: quot}
	}
	ls := l.Subs()
	ts := t.Subs()
	if len(ls) != len(ts) {
		panic("layout: Tuple arity mismatch in ZippedDivide")
	}
	tiles := make([]Tuple, len(ls))
	rests := make([]Tuple, len(ls))
	for i, s := range ls {
		tiles[i], rests[i] = zippedDivideRec(s, ts[i])
	}
	return Tuple{subs: tiles}, Tuple{subs: rests}
}

// TiledDivide flattens the rest component of ZippedDivide by one level,
// producing (tile, rest0, rest1, ...).
func TiledDivide(l, tiler Layout) Layout {
	zipped := ZippedDivide(l, tiler)
	groups := zipped.Shape().Dims().Subs()
	out := []Tuple{groups[0]}
	out = append(out, groups[1].topModes()...)
	return RowMajorLayout(NewShape(Tuple{subs: out}))
}

// FlatDivide fully flattens TiledDivide into one leaf sequence
// (tile0, tile1, ..., rest0, rest1, ...), the canonical form consumed
// by tile enumeration.
func FlatDivide(l, tiler Layout) Layout {
	tiled := TiledDivide(l, tiler)
	return RowMajorLayout(NewShape(IntsOf(tiled.Shape().Flatten())))
}
