package layout

// Stride is a Tuple interpreted as per-dimension memory-offset
// multipliers. Every Stride is tree-congruent with the Shape it was
// derived from; the pairing is maintained by Layout.
type Stride struct {
	t Tuple
}

// NewStride wraps a Tuple of multipliers as a Stride.
func NewStride(t Tuple) Stride {
	return Stride{t: t}
}

// Tuple returns the underlying multiplier Tuple.
func (s Stride) Tuple() Tuple { return s.t }

// Size returns the product of all multipliers, a crude bound used only
// for diagnostics; Layout.Cosize is the addressing bound.
func (s Stride) Size() int { return s.t.Size() }

// Rank returns the number of top-level modes.
func (s Stride) Rank() int { return s.t.Rank() }

// FlatLen returns the number of scalar multipliers across the tree.
func (s Stride) FlatLen() int { return s.t.FlatLen() }

// FlatAt returns the i-th scalar multiplier in pre-order.
func (s Stride) FlatAt(i int) int { return s.t.FlatAt(i) }

// Flatten returns the pre-order sequence of scalar multipliers.
func (s Stride) Flatten() []int { return s.t.Flatten() }

// Equal reports whether two Strides have identical multiplier trees.
func (s Stride) Equal(o Stride) bool { return s.t.Equal(o.t) }

// String renders the nested-parenthesis form, e.g. (12,(4,1)).
func (s Stride) String() string { return s.t.String() }
