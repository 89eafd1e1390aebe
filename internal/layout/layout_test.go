package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowMajorRoundTrip(t *testing.T) {
	shapes := []Shape{
		ShapeOf(6),
		ShapeOf(8, 6),
		ShapeOf(4, 6, 8),
		NewShape(Nest(Ints(2), Ints(3))),
		NewShape(Nest(Ints(2), Nest(Ints(3), Ints(4)))),
	}

	for _, s := range shapes {
		l := RowMajorLayout(s)
		for i := 0; i < l.Size(); i++ {
			crd := l.Idx2Crd(i)
			require.Equal(t, i, l.Crd2Idx(crd), "shape %s index %d", s, i)
		}
	}
}

func TestHierarchicalRowMajorStride(t *testing.T) {
	shape := NewShape(Nest(Ints(2), Nest(Ints(3), Ints(4))))
	l := RowMajorLayout(shape)
	assert.Equal(t, "(12,(4,1))", l.Stride().String())
}

func TestColMajorStride(t *testing.T) {
	l := ColMajorLayout(ShapeOf(8, 6))
	assert.Equal(t, "(1,8)", l.Stride().String())

	// outermost dimension varies fastest
	assert.Equal(t, 1, l.Crd2Idx(Ints(1, 0)))
	assert.Equal(t, 8, l.Crd2Idx(Ints(0, 1)))
}

func TestContiguity(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   bool
	}{
		{"dense row-major 2d", RowMajorLayout(ShapeOf(8, 6)), true},
		{"dense row-major nested", RowMajorLayout(NewShape(Nest(Ints(2), Nest(Ints(3), Ints(4))))), true},
		{"col-major 2d", ColMajorLayout(ShapeOf(8, 6)), false},
		{"1d", RowMajorLayout(ShapeOf(5)), true},
		{
			// a 3x4 window sliced out of an 8-column parent keeps the
			// parent's outer stride
			"sliced window",
			WithShapeStride(ShapeOf(3, 4), NewStride(Ints(8, 1))),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.layout.IsContiguous())
		})
	}
}

func TestCosize(t *testing.T) {
	dense := RowMajorLayout(ShapeOf(8, 6))
	assert.Equal(t, 48, dense.Cosize())
	assert.Equal(t, 48, dense.Size())

	// padded rows: 3x4 window over stride (8,1)
	window := WithShapeStride(ShapeOf(3, 4), NewStride(Ints(8, 1)))
	assert.Equal(t, 12, window.Size())
	assert.Equal(t, 2*8+3*1+1, window.Cosize())

	// hierarchical cosize resolves to the last child at each branch,
	// understating the bound for branch layouts
	nested := RowMajorLayout(NewShape(Nest(Ints(2), Nest(Ints(3), Ints(4)))))
	assert.Equal(t, 4, nested.Cosize())
}

func TestIdx2CrdBoundsPanic(t *testing.T) {
	l := RowMajorLayout(ShapeOf(2, 3))
	assert.Panics(t, func() { l.Idx2Crd(6) })
}

func TestWithShapeStrideCongruencePanic(t *testing.T) {
	assert.Panics(t, func() {
		WithShapeStride(ShapeOf(2, 3), NewStride(Nest(Ints(3), Ints(1))))
	})
}

func TestLayoutEqual(t *testing.T) {
	a := RowMajorLayout(ShapeOf(8, 6))
	b := RowMajorLayout(ShapeOf(8, 6))
	c := ColMajorLayout(ShapeOf(8, 6))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestLayoutString(t *testing.T) {
	l := RowMajorLayout(ShapeOf(8, 6))
	assert.Equal(t, "(8,6):(6,1)", l.String())
}
