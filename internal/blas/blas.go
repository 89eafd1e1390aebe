// Package blas defines the numeric backend boundary: a single dense
// matrix-multiply capability, the lowering from dense rank-2 layouts to
// BLAS calling conventions, and the production binding to a native
// CBLAS library.
package blas

// Transpose selects whether an operand is consumed as stored or
// transposed.
type Transpose int

// Operand transpose modes.
const (
	NoTrans Transpose = iota
	Trans
)

// String returns the conventional BLAS spelling.
func (t Transpose) String() string {
	switch t {
	case NoTrans:
		return "N"
	case Trans:
		return "T"
	default:
		return "?"
	}
}

// Backend performs a dense single-precision matrix multiply
// C = alpha * op(A) * op(B) + beta * C over row-major-addressable
// buffers. The call is synchronous; there is no asynchronous variant.
type Backend interface {
	Sgemm(
		transA, transB Transpose,
		m, n, k int,
		alpha float32,
		a []float32, lda int,
		b []float32, ldb int,
		beta float32,
		c []float32, ldc int,
	)
}
