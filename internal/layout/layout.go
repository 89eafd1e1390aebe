package layout

import "fmt"

// Layout pairs a Shape with a congruent Stride and defines the mapping
// from (possibly nested) coordinates to linear memory offsets. Layouts
// are immutable values; the contiguity flag is derived once at
// construction.
type Layout struct {
	shape  Shape
	stride Stride
	contig bool
}

// Policy derives a congruent stride tree for a shape. RowMajor and
// ColMajor are the built-in policies; callers may supply their own.
type Policy interface {
	MakeStride(s Shape) Stride
}

type rowMajorPolicy struct{}
type colMajorPolicy struct{}

// RowMajor strides decrease right to left: the innermost extent has
// stride 1 and each mode's stride is the product of all extents to its
// right.
var RowMajor Policy = rowMajorPolicy{}

// ColMajor is the mirror image of RowMajor: the outermost extent has
// stride 1 at the leaf level.
var ColMajor Policy = colMajorPolicy{}

// New constructs a Layout over shape with strides derived by policy.
func New(shape Shape, policy Policy) Layout {
	return WithShapeStride(shape, policy.MakeStride(shape))
}

// RowMajorLayout constructs a row-major Layout over shape.
func RowMajorLayout(shape Shape) Layout {
	return New(shape, RowMajor)
}

// ColMajorLayout constructs a column-major Layout over shape.
func ColMajorLayout(shape Shape) Layout {
	return New(shape, ColMajor)
}

// WithShapeStride constructs a Layout from an arbitrary shape/stride
// pair, as used for sub-views that inherit a parent's stride tree.
// Panics if the two trees are not congruent.
func WithShapeStride(shape Shape, stride Stride) Layout {
	if !shape.Dims().Congruent(stride.Tuple()) {
		panic(fmt.Sprintf("layout: shape %s and stride %s are not congruent", shape, stride))
	}
	return Layout{
		shape:  shape,
		stride: stride,
		contig: computeContiguous(shape, stride),
	}
}

// computeContiguous walks the flattened (extent, stride) pairs from
// innermost to outermost, checking each stride against the running
// product of previously seen extents. Any deviation from canonical
// dense row-major addressing makes the layout non-contiguous.
func computeContiguous(shape Shape, stride Stride) bool {
	extents := shape.Flatten()
	strides := stride.Flatten()
	expected := 1
	for i := len(extents) - 1; i >= 0; i-- {
		if strides[i] != expected {
			return false
		}
		expected *= extents[i]
	}
	return true
}

// Shape returns the extent tree.
func (l Layout) Shape() Shape { return l.shape }

// Stride returns the multiplier tree.
func (l Layout) Stride() Stride { return l.stride }

// Size returns the total element count of the layout's domain.
func (l Layout) Size() int { return l.shape.Size() }

// Rank returns the number of top-level modes.
func (l Layout) Rank() int { return l.shape.Rank() }

// IsContiguous reports whether the layout matches canonical dense
// row-major addressing.
func (l Layout) IsContiguous() bool { return l.contig }

// Cosize returns the exclusive upper bound of the linear offsets the
// layout can produce, computed by resolving to the last child at each
// branching level. For stride trees whose branches are not sorted by
// stride this understates the true bound; that limitation is inherited
// from the reference design and kept deliberately.
func (l Layout) Cosize() int {
	return cosizeRec(l.shape.Dims(), l.stride.Tuple())
}

func cosizeRec(shape, stride Tuple) int {
	if shape.IsLeaf() != stride.IsLeaf() {
		panic("layout: shape/stride mismatch in Cosize")
	}
	if shape.IsLeaf() {
		extents := shape.Leaf()
		strides := stride.Leaf()
		last := 0
		for i, e := range extents {
			last += (e - 1) * strides[i]
		}
		return last + 1
	}
	ss := shape.Subs()
	ts := stride.Subs()
	if len(ss) == 0 {
		panic("layout: empty branch in Cosize")
	}
	return cosizeRec(ss[len(ss)-1], ts[len(ts)-1])
}

// Crd2Idx maps a coordinate Tuple to its linear offset. The coordinate
// must be tree-congruent with the stride tree.
func (l Layout) Crd2Idx(crd Tuple) int {
	return crd.Dot(l.stride.Tuple())
}

// Idx2Crd decomposes a linear offset back into a coordinate Tuple by
// walking the (extent, stride) pairs in tree order: divide by the
// stride, bound-check the quotient against the extent, subtract, and
// continue. Decomposition order follows the tree, not stride magnitude.
func (l Layout) Idx2Crd(idx int) Tuple {
	crd, _ := idx2crdRec(idx, l.shape.Dims(), l.stride.Tuple())
	return crd
}

func idx2crdRec(idx int, shape, stride Tuple) (Tuple, int) {
	if shape.IsLeaf() != stride.IsLeaf() {
		panic("layout: shape/stride mismatch in Idx2Crd")
	}
	if shape.IsLeaf() {
		extents := shape.Leaf()
		strides := stride.Leaf()
		out := make([]int, len(extents))
		for i, st := range strides {
			v := idx / st
			if v >= extents[i] {
				panic(fmt.Sprintf("layout: index decomposes to coordinate %d beyond extent %d", v, extents[i]))
			}
			idx -= v * st
			out[i] = v
		}
		return Tuple{ints: out}, idx
	}
	ss := shape.Subs()
	ts := stride.Subs()
	subs := make([]Tuple, len(ss))
	for i, s := range ss {
		subs[i], idx = idx2crdRec(idx, s, ts[i])
	}
	return Tuple{subs: subs}, idx
}

// Equal reports whether two layouts have identical shape and stride
// trees. The contiguity flag is derived, so it never differs for equal
// trees.
func (l Layout) Equal(o Layout) bool {
	return l.shape.Equal(o.shape) && l.stride.Equal(o.stride)
}

// String renders the layout as shape:stride, e.g. (8,6):(6,1).
func (l Layout) String() string {
	return l.shape.String() + ":" + l.stride.String()
}

func scaleStride(t Tuple, factor int) Tuple {
	if t.IsLeaf() {
		vals := make([]int, len(t.ints))
		for i, v := range t.ints {
			vals[i] = v * factor
		}
		return Tuple{ints: vals}
	}
	subs := make([]Tuple, len(t.subs))
	for i, s := range t.subs {
		subs[i] = scaleStride(s, factor)
	}
	return Tuple{subs: subs}
}

func rowMajorStride(shape Tuple) Tuple {
	if shape.IsLeaf() {
		extents := shape.Leaf()
		out := make([]int, len(extents))
		acc := 1
		for i := len(extents) - 1; i >= 0; i-- {
			out[i] = acc
			acc *= extents[i]
		}
		return Tuple{ints: out}
	}
	subs := shape.Subs()
	out := make([]Tuple, len(subs))
	acc := 1
	for i := len(subs) - 1; i >= 0; i-- {
		out[i] = scaleStride(rowMajorStride(subs[i]), acc)
		acc *= subs[i].Size()
	}
	return Tuple{subs: out}
}

func colMajorStride(shape Tuple) Tuple {
	if shape.IsLeaf() {
		extents := shape.Leaf()
		out := make([]int, len(extents))
		acc := 1
		for i, e := range extents {
			out[i] = acc
			acc *= e
		}
		return Tuple{ints: out}
	}
	subs := shape.Subs()
	out := make([]Tuple, len(subs))
	acc := 1
	for i, s := range subs {
		out[i] = scaleStride(colMajorStride(s), acc)
		acc *= s.Size()
	}
	return Tuple{subs: out}
}

func (rowMajorPolicy) MakeStride(s Shape) Stride {
	return Stride{t: rowMajorStride(s.Dims())}
}

func (colMajorPolicy) MakeStride(s Shape) Stride {
	return Stride{t: colMajorStride(s.Dims())}
}
