// Copyright 2025 Tilelib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blas is the public API for the numeric backend boundary: the
// single-call dense matrix-multiply capability, the lowering from dense
// rank-2 layouts to BLAS conventions, and backend implementations.
//
// OpenBLAS binds cblas_sgemm from a native library lazily on first use,
// once per process, with no unload path; a missing library or symbol is
// fatal. Naive is a pure Go fallback and test oracle.
package blas

import (
	"github.com/bikshand/tilelib/internal/blas"
	"github.com/bikshand/tilelib/internal/layout"
	"github.com/bikshand/tilelib/internal/tensor"
)

// Transpose selects whether an operand is consumed as stored or
// transposed.
type Transpose = blas.Transpose

// Operand transpose modes.
const (
	NoTrans Transpose = blas.NoTrans
	Trans   Transpose = blas.Trans
)

// Backend performs a dense single-precision matrix multiply.
type Backend = blas.Backend

// Naive is a pure Go Backend used as a reference and fallback.
type Naive = blas.Naive

// LowerMatrix determines (leading dimension, transpose) for a dense
// rank-2 layout; gapped layouts panic.
func LowerMatrix(l layout.Layout) (ld int, t Transpose) {
	return blas.LowerMatrix(l)
}

// Gemm computes C = alpha*A*B + beta*C for rank-2 views through the
// given backend.
func Gemm(
	backend Backend,
	a, b tensor.View[float32],
	c tensor.MutView[float32],
	alpha, beta float32,
) {
	blas.Gemm(backend, a, b, c, alpha, beta)
}
