package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikshand/tilelib/internal/layout"
)

func iota2D(m, n int) *Tensor[float32] {
	data := make([]float32, m*n)
	for i := range data {
		data[i] = float32(i)
	}
	return New(data, layout.RowMajorLayout(layout.ShapeOf(m, n)))
}

func TestNewChecksBufferLength(t *testing.T) {
	l := layout.RowMajorLayout(layout.ShapeOf(2, 3))

	assert.NotPanics(t, func() { New(make([]float32, 6), l) })
	assert.Panics(t, func() { New(make([]float32, 5), l) })
	assert.Panics(t, func() { New(make([]float32, 7), l) })
}

func TestZeros(t *testing.T) {
	tt := Zeros[int32](layout.RowMajorLayout(layout.ShapeOf(3, 4)))
	require.Len(t, tt.Data(), 12)
	for _, v := range tt.Data() {
		assert.Equal(t, int32(0), v)
	}
}

func TestViewGet(t *testing.T) {
	tt := iota2D(2, 3)
	v := tt.View()

	assert.Equal(t, float32(0), v.Get(layout.Ints(0, 0)))
	assert.Equal(t, float32(5), v.Get(layout.Ints(1, 2)))
}

func TestViewGetHierarchical(t *testing.T) {
	shape := layout.NewShape(layout.Nest(layout.Ints(2), layout.Ints(3)))
	data := []int32{0, 1, 2, 3, 4, 5}
	tt := New(data, layout.RowMajorLayout(shape))

	v := tt.View()
	crd := layout.Nest(layout.Ints(1), layout.Ints(2))
	assert.Equal(t, int32(5), v.Get(crd))
}

func TestMutViewSetAliasesTensor(t *testing.T) {
	tt := Zeros[float32](layout.RowMajorLayout(layout.ShapeOf(3, 3)))
	mv := tt.MutView()

	mv.Set(layout.Ints(1, 1), 42)
	assert.Equal(t, float32(42), tt.Data()[4])
	assert.Equal(t, float32(42), tt.View().Get(layout.Ints(1, 1)))
}

func TestGetMismatchedCoordPanics(t *testing.T) {
	tt := iota2D(2, 3)
	v := tt.View()

	// coordinate tree must be congruent with the stride tree
	assert.Panics(t, func() {
		v.Get(layout.Nest(layout.Ints(1), layout.Ints(2)))
	})
}
