package blas

// Naive is a pure Go Backend with a textbook O(m*n*k) loop. It honors
// the full sgemm contract (transposes, leading dimensions, alpha and
// beta), so it serves as a drop-in reference when no native CBLAS is
// available and as the oracle in tests.
type Naive struct{}

// Sgemm computes C = alpha * op(A) * op(B) + beta * C.
func (Naive) Sgemm(
	transA, transB Transpose,
	m, n, k int,
	alpha float32,
	a []float32, lda int,
	b []float32, ldb int,
	beta float32,
	c []float32, ldc int,
) {
	at := func(i, l int) float32 {
		if transA == Trans {
			return a[l*lda+i]
		}
		return a[i*lda+l]
	}
	bt := func(l, j int) float32 {
		if transB == Trans {
			return b[j*ldb+l]
		}
		return b[l*ldb+j]
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for l := 0; l < k; l++ {
				sum += at(i, l) * bt(l, j)
			}
			c[i*ldc+j] = alpha*sum + beta*c[i*ldc+j]
		}
	}
}
