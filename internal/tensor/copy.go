package tensor

import "fmt"

// Copy copies every element of src into dst. The two views must have
// equal shape trees. Contiguous pairs take a single bulk copy; strided
// views fall back to an elementwise walk over the flattened extents.
func Copy[T any](dst MutView[T], src View[T]) {
	if !src.Layout().Shape().Equal(dst.Layout().Shape()) {
		panic(fmt.Sprintf("tensor: Copy shape mismatch: %s vs %s", src.Layout().Shape(), dst.Layout().Shape()))
	}
	if src.Layout().Size() == 0 {
		return
	}
	if src.Layout().IsContiguous() && dst.Layout().IsContiguous() {
		copy(dst.data[:src.Layout().Size()], src.data)
		return
	}

	extents := src.Layout().Shape().Flatten()
	srcStrides := src.Layout().Stride().Flatten()
	dstStrides := dst.Layout().Stride().Flatten()

	idx := make([]int, len(extents))
	srcOff, dstOff := 0, 0
	for {
		dst.data[dstOff] = src.data[srcOff]

		d := len(extents) - 1
		for ; d >= 0; d-- {
			idx[d]++
			srcOff += srcStrides[d]
			dstOff += dstStrides[d]
			if idx[d] < extents[d] {
				break
			}
			srcOff -= idx[d] * srcStrides[d]
			dstOff -= idx[d] * dstStrides[d]
			idx[d] = 0
		}
		if d < 0 {
			return
		}
	}
}
