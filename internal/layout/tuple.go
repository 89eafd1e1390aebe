// Package layout implements the hierarchical extent/stride algebra that
// maps nested tensor coordinates onto linear memory offsets.
package layout

import (
	"fmt"
	"strings"
)

// Tuple is a recursive integer structure: either a leaf holding an
// ordered sequence of non-negative ints, or a branch holding an ordered
// sequence of sub-Tuples. It represents nested extents or nested strides.
//
// Binary operations (Dot, DivExact, ModExact, ...) require both operand
// trees to be structurally congruent: same leaf/branch choice and same
// arity at every depth. A mismatch is a contract violation and panics.
type Tuple struct {
	ints []int
	subs []Tuple
}

// Ints builds a leaf Tuple from a sequence of ints.
func Ints(vals ...int) Tuple {
	out := make([]int, len(vals))
	copy(out, vals)
	return Tuple{ints: out}
}

// IntsOf builds a leaf Tuple from an existing slice without reallocating
// when the caller hands over ownership.
func IntsOf(vals []int) Tuple {
	return Tuple{ints: vals}
}

// Nest builds a branch Tuple from sub-Tuples.
func Nest(subs ...Tuple) Tuple {
	out := make([]Tuple, len(subs))
	copy(out, subs)
	return Tuple{subs: out}
}

// IsLeaf reports whether the Tuple is a leaf.
func (t Tuple) IsLeaf() bool {
	return t.subs == nil
}

// Leaf returns the leaf values. Panics on a branch Tuple.
func (t Tuple) Leaf() []int {
	if !t.IsLeaf() {
		panic("layout: Leaf called on branch Tuple")
	}
	return t.ints
}

// Subs returns the child Tuples. Panics on a leaf Tuple.
func (t Tuple) Subs() []Tuple {
	if t.IsLeaf() {
		panic("layout: Subs called on leaf Tuple")
	}
	return t.subs
}

// Size returns the product of all leaf values.
func (t Tuple) Size() int {
	n := 1
	if t.IsLeaf() {
		for _, v := range t.ints {
			n *= v
		}
		return n
	}
	for _, s := range t.subs {
		n *= s.Size()
	}
	return n
}

// Rank returns the arity at the top level. A leaf Tuple is a single
// mode, so its rank is 1 regardless of how many values it holds.
func (t Tuple) Rank() int {
	if t.IsLeaf() {
		return 1
	}
	return len(t.subs)
}

// Depth returns the maximum nesting depth. A leaf has depth 1.
func (t Tuple) Depth() int {
	if t.IsLeaf() {
		return 1
	}
	max := 0
	for _, s := range t.subs {
		if d := s.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// Get returns the i-th top-level child. On a branch this is the i-th
// sub-Tuple; on a leaf it is a single-value leaf holding the i-th int.
func (t Tuple) Get(i int) Tuple {
	if t.IsLeaf() {
		if i < 0 || i >= len(t.ints) {
			panic(fmt.Sprintf("layout: Get(%d) out of range for leaf of %d values", i, len(t.ints)))
		}
		return Ints(t.ints[i])
	}
	if i < 0 || i >= len(t.subs) {
		panic(fmt.Sprintf("layout: Get(%d) out of range for branch of %d children", i, len(t.subs)))
	}
	return t.subs[i]
}

// Flatten returns the pre-order sequence of all leaf values.
func (t Tuple) Flatten() []int {
	out := make([]int, 0, t.FlatLen())
	return t.appendFlat(out)
}

func (t Tuple) appendFlat(out []int) []int {
	if t.IsLeaf() {
		return append(out, t.ints...)
	}
	for _, s := range t.subs {
		out = s.appendFlat(out)
	}
	return out
}

// FlatLen returns the total number of leaf values.
func (t Tuple) FlatLen() int {
	if t.IsLeaf() {
		return len(t.ints)
	}
	n := 0
	for _, s := range t.subs {
		n += s.FlatLen()
	}
	return n
}

// FlatAt returns the i-th leaf value in pre-order.
func (t Tuple) FlatAt(i int) int {
	v, ok := t.flatAt(i)
	if !ok {
		panic(fmt.Sprintf("layout: FlatAt(%d) out of range for Tuple of %d leaves", i, t.FlatLen()))
	}
	return v
}

func (t Tuple) flatAt(i int) (int, bool) {
	if t.IsLeaf() {
		if i < len(t.ints) {
			return t.ints[i], true
		}
		return 0, false
	}
	for _, s := range t.subs {
		n := s.FlatLen()
		if i < n {
			return s.flatAt(i)
		}
		i -= n
	}
	return 0, false
}

// Dot computes the hierarchical inner product of two congruent Tuples:
// the sum over matched leaves of elementwise products.
func (t Tuple) Dot(o Tuple) int {
	if t.IsLeaf() != o.IsLeaf() {
		panic("layout: Tuple shape mismatch in Dot")
	}
	if t.IsLeaf() {
		if len(t.ints) != len(o.ints) {
			panic(fmt.Sprintf("layout: Tuple length mismatch in Dot: %d vs %d", len(t.ints), len(o.ints)))
		}
		sum := 0
		for i, v := range t.ints {
			sum += v * o.ints[i]
		}
		return sum
	}
	if len(t.subs) != len(o.subs) {
		panic(fmt.Sprintf("layout: Tuple arity mismatch in Dot: %d vs %d", len(t.subs), len(o.subs)))
	}
	sum := 0
	for i, s := range t.subs {
		sum += s.Dot(o.subs[i])
	}
	return sum
}

// Concat joins two Tuples at the top level. Two leaves concatenate into
// one leaf; otherwise the result is a branch over both sides' top-level
// modes, with a leaf side contributing itself as a single mode.
func (t Tuple) Concat(o Tuple) Tuple {
	if t.IsLeaf() && o.IsLeaf() {
		vals := make([]int, 0, len(t.ints)+len(o.ints))
		vals = append(vals, t.ints...)
		vals = append(vals, o.ints...)
		return Tuple{ints: vals}
	}
	subs := make([]Tuple, 0, t.Rank()+o.Rank())
	subs = append(subs, t.topModes()...)
	subs = append(subs, o.topModes()...)
	return Tuple{subs: subs}
}

func (t Tuple) topModes() []Tuple {
	if t.IsLeaf() {
		return []Tuple{t}
	}
	return t.subs
}

// DivExact divides two congruent Tuples elementwise over their leaves,
// panicking unless every pair divides exactly.
func (t Tuple) DivExact(o Tuple) Tuple {
	return t.zipLeaves(o, "DivExact", func(a, b int) int {
		if b == 0 || a%b != 0 {
			panic(fmt.Sprintf("layout: DivExact %d/%d is not exact", a, b))
		}
		return a / b
	})
}

// ModExact computes the elementwise remainder of two congruent Tuples.
func (t Tuple) ModExact(o Tuple) Tuple {
	return t.zipLeaves(o, "ModExact", func(a, b int) int {
		if b == 0 {
			panic(fmt.Sprintf("layout: ModExact %d%%0", a))
		}
		return a % b
	})
}

// zipLeaves walks two congruent trees together, applying f at each leaf
// value pair and preserving the tree structure of the receiver.
func (t Tuple) zipLeaves(o Tuple, op string, f func(a, b int) int) Tuple {
	if t.IsLeaf() != o.IsLeaf() {
		panic(fmt.Sprintf("layout: Tuple shape mismatch in %s", op))
	}
	if t.IsLeaf() {
		if len(t.ints) != len(o.ints) {
			panic(fmt.Sprintf("layout: Tuple length mismatch in %s: %d vs %d", op, len(t.ints), len(o.ints)))
		}
		vals := make([]int, len(t.ints))
		for i, v := range t.ints {
			vals[i] = f(v, o.ints[i])
		}
		return Tuple{ints: vals}
	}
	if len(t.subs) != len(o.subs) {
		panic(fmt.Sprintf("layout: Tuple arity mismatch in %s: %d vs %d", op, len(t.subs), len(o.subs)))
	}
	subs := make([]Tuple, len(t.subs))
	for i, s := range t.subs {
		subs[i] = s.zipLeaves(o.subs[i], op, f)
	}
	return Tuple{subs: subs}
}

// Congruent reports whether two Tuples have the same tree structure at
// every depth, ignoring the leaf values themselves.
func (t Tuple) Congruent(o Tuple) bool {
	if t.IsLeaf() != o.IsLeaf() {
		return false
	}
	if t.IsLeaf() {
		return len(t.ints) == len(o.ints)
	}
	if len(t.subs) != len(o.subs) {
		return false
	}
	for i, s := range t.subs {
		if !s.Congruent(o.subs[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two Tuples are structurally identical with
// identical leaf values.
func (t Tuple) Equal(o Tuple) bool {
	if t.IsLeaf() != o.IsLeaf() {
		return false
	}
	if t.IsLeaf() {
		if len(t.ints) != len(o.ints) {
			return false
		}
		for i, v := range t.ints {
			if v != o.ints[i] {
				return false
			}
		}
		return true
	}
	if len(t.subs) != len(o.subs) {
		return false
	}
	for i, s := range t.subs {
		if !s.Equal(o.subs[i]) {
			return false
		}
	}
	return true
}

// String renders the canonical nested-parenthesis form, e.g. (2,(3,4)).
// A single-entry Tuple prints as its sole entry without parentheses.
func (t Tuple) String() string {
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t Tuple) writeTo(b *strings.Builder) {
	if t.IsLeaf() {
		if len(t.ints) == 1 {
			fmt.Fprintf(b, "%d", t.ints[0])
			return
		}
		b.WriteByte('(')
		for i, v := range t.ints {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%d", v)
		}
		b.WriteByte(')')
		return
	}
	if len(t.subs) == 1 {
		t.subs[0].writeTo(b)
		return
	}
	b.WriteByte('(')
	for i, s := range t.subs {
		if i > 0 {
			b.WriteByte(',')
		}
		s.writeTo(b)
	}
	b.WriteByte(')')
}
