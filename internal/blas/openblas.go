//go:build darwin || freebsd || linux

package blas

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// CBLAS enum values for the row-major sgemm entry point.
const (
	cblasRowMajor int32 = 101
	cblasNoTrans  int32 = 111
	cblasTrans    int32 = 112
)

// Library candidates tried in order on first use.
var cblasCandidates = []string{"libopenblas.so", "libblas.so"}

var (
	cblasOnce  sync.Once
	cblasSgemm func(
		order, transA, transB int32,
		m, n, k int32,
		alpha float32,
		a *float32, lda int32,
		b *float32, ldb int32,
		beta float32,
		c *float32, ldc int32,
	)
)

// loadCBLAS resolves cblas_sgemm from the first loadable candidate.
// The handle lives for the remainder of the process; there is no
// unload path. Failure to find any candidate, or the symbol within it,
// is fatal.
func loadCBLAS() {
	var errs error
	for _, name := range cblasCandidates {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "open %s", name))
			continue
		}
		purego.RegisterLibFunc(&cblasSgemm, lib, "cblas_sgemm")
		return
	}
	panic(errors.Wrap(errs, "blas: no usable CBLAS library"))
}

// OpenBLAS is the production Backend. It binds cblas_sgemm from
// libopenblas.so, falling back to libblas.so, lazily on first use and
// once per process.
type OpenBLAS struct{}

// Sgemm dispatches to the native cblas_sgemm with row-major layout.
func (OpenBLAS) Sgemm(
	transA, transB Transpose,
	m, n, k int,
	alpha float32,
	a []float32, lda int,
	b []float32, ldb int,
	beta float32,
	c []float32, ldc int,
) {
	cblasOnce.Do(loadCBLAS)
	cblasSgemm(
		cblasRowMajor,
		cblasTranspose(transA),
		cblasTranspose(transB),
		int32(m), int32(n), int32(k),
		alpha,
		&a[0], int32(lda),
		&b[0], int32(ldb),
		beta,
		&c[0], int32(ldc),
	)
}

func cblasTranspose(t Transpose) int32 {
	if t == Trans {
		return cblasTrans
	}
	return cblasNoTrans
}
