package blas

import (
	"fmt"

	"github.com/bikshand/tilelib/internal/layout"
	"github.com/bikshand/tilelib/internal/tensor"
)

// LowerMatrix determines the (leading dimension, transpose) pair for a
// dense rank-2 layout by inspecting which stride equals 1. Inner stride
// 1 is row-major storage: no transpose, leading dimension = outer
// stride. Outer stride 1 is column-major storage, consumed through the
// transpose trick: leading dimension = inner stride. Any other stride
// pattern is unsupported and panics.
func LowerMatrix(l layout.Layout) (ld int, t Transpose) {
	if l.Shape().FlatLen() != 2 {
		panic(fmt.Sprintf("blas: LowerMatrix needs a rank-2 layout, got %s", l.Shape()))
	}
	s0 := l.Stride().FlatAt(0)
	s1 := l.Stride().FlatAt(1)
	switch {
	case s1 == 1:
		return s0, NoTrans
	case s0 == 1:
		return s1, Trans
	default:
		panic(fmt.Sprintf("blas: layout %s is neither row- nor column-major dense", l))
	}
}

// Gemm computes C = alpha * A * B + beta * C for rank-2 views, lowering
// each operand's layout to BLAS conventions and dispatching a single
// backend call. A is (M,K), B is (K,N) and C is (M,N); C must be
// row-major addressable. Shape or layout violations panic.
func Gemm(
	backend Backend,
	a, b tensor.View[float32],
	c tensor.MutView[float32],
	alpha, beta float32,
) {
	la := a.Layout()
	lb := b.Layout()
	lc := c.Layout()

	if la.Shape().FlatLen() != 2 || lb.Shape().FlatLen() != 2 || lc.Shape().FlatLen() != 2 {
		panic(fmt.Sprintf("blas: Gemm needs rank-2 operands, got %s, %s, %s",
			la.Shape(), lb.Shape(), lc.Shape()))
	}

	m := la.Shape().FlatAt(0)
	k := la.Shape().FlatAt(1)
	n := lb.Shape().FlatAt(1)

	if lb.Shape().FlatAt(0) != k {
		panic(fmt.Sprintf("blas: inner dimension mismatch: A is %s, B is %s", la.Shape(), lb.Shape()))
	}
	if lc.Shape().FlatAt(0) != m || lc.Shape().FlatAt(1) != n {
		panic(fmt.Sprintf("blas: C shape %s does not match %dx%d", lc.Shape(), m, n))
	}

	lda, ta := LowerMatrix(la)
	ldb, tb := LowerMatrix(lb)

	// C feeds cblas as row-major output; the transpose trick does not
	// apply to it.
	if lc.Stride().FlatAt(1) != 1 {
		panic(fmt.Sprintf("blas: C layout %s is not row-major addressable", lc))
	}
	ldc := lc.Stride().FlatAt(0)

	backend.Sgemm(ta, tb, m, n, k, alpha, a.Data(), lda, b.Data(), ldb, beta, c.Data(), ldc)
}
