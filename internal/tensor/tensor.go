// Package tensor provides buffers, zero-copy views and disjoint tile
// partitioning on top of the layout algebra.
package tensor

import (
	"fmt"

	"github.com/bikshand/tilelib/internal/layout"
)

// Tensor owns a contiguous backing buffer together with an immutable
// Layout describing how coordinates address it. The buffer length must
// equal the layout's element count; construction panics otherwise.
type Tensor[T any] struct {
	data   []T
	layout layout.Layout
}

// New wraps data with l. The slice is adopted, not copied.
func New[T any](data []T, l layout.Layout) *Tensor[T] {
	if len(data) != l.Size() {
		panic(fmt.Sprintf("tensor: layout %s addresses %d elements, buffer holds %d", l, l.Size(), len(data)))
	}
	return &Tensor[T]{data: data, layout: l}
}

// Zeros allocates a zeroed tensor over l.
func Zeros[T any](l layout.Layout) *Tensor[T] {
	return &Tensor[T]{data: make([]T, l.Size()), layout: l}
}

// Layout returns the tensor's layout.
func (t *Tensor[T]) Layout() layout.Layout {
	return t.layout
}

// Data returns the backing buffer. Writes through the slice alias the
// tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// View borrows the buffer as an immutable window over the whole tensor.
// The view must not outlive the tensor.
func (t *Tensor[T]) View() View[T] {
	return View[T]{data: t.data, layout: t.layout}
}

// MutView borrows the buffer as a mutable window over the whole tensor.
// Overlapping mutable views must not be used concurrently; the library
// guarantees disjointness only for tiled views.
func (t *Tensor[T]) MutView() MutView[T] {
	return MutView[T]{data: t.data, layout: t.layout}
}

// String describes the tensor without printing its elements.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%s", t.layout)
}
