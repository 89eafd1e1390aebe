package layout

// Shape is a Tuple interpreted as per-dimension element extents.
type Shape struct {
	dims Tuple
}

// NewShape wraps a Tuple of extents as a Shape.
func NewShape(dims Tuple) Shape {
	return Shape{dims: dims}
}

// ShapeOf builds a flat leaf Shape from plain N-D extents, the
// canonical form for non-nested shapes.
func ShapeOf(dims ...int) Shape {
	return Shape{dims: Ints(dims...)}
}

// Dims returns the underlying extent Tuple.
func (s Shape) Dims() Tuple { return s.dims }

// Size returns the total number of elements, the product of all extents.
func (s Shape) Size() int { return s.dims.Size() }

// Rank returns the number of top-level modes.
func (s Shape) Rank() int { return s.dims.Rank() }

// Depth returns the maximum nesting depth of the extent tree.
func (s Shape) Depth() int { return s.dims.Depth() }

// FlatLen returns the number of scalar extents across the whole tree.
func (s Shape) FlatLen() int { return s.dims.FlatLen() }

// FlatAt returns the i-th scalar extent in pre-order.
func (s Shape) FlatAt(i int) int { return s.dims.FlatAt(i) }

// Flatten returns the pre-order sequence of scalar extents.
func (s Shape) Flatten() []int { return s.dims.Flatten() }

// Get returns the i-th top-level mode as a sub-Shape.
func (s Shape) Get(i int) Shape { return Shape{dims: s.dims.Get(i)} }

// Equal reports whether two Shapes have identical extent trees.
func (s Shape) Equal(o Shape) bool { return s.dims.Equal(o.dims) }

// String renders the nested-parenthesis form, e.g. (2,(3,4)).
func (s Shape) String() string { return s.dims.String() }
