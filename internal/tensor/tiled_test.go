package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikshand/tilelib/internal/layout"
)

func TestTilesCoverWithoutOverlap(t *testing.T) {
	m, n := 8, 6
	tt := iota2D(m, n)
	tiler := layout.RowMajorLayout(layout.ShapeOf(3, 4))

	tiled := NewTiled(tt.View(), tiler)

	visited := make([]bool, m*n)
	for tile, sub, ok := tiled.Next(); ok; tile, sub, ok = tiled.Next() {
		for i := 0; i < tile.Len(0); i++ {
			for j := 0; j < tile.Len(1); j++ {
				gi := tile.Start(0) + i
				gj := tile.Start(1) + j
				idx := gi*n + gj

				require.False(t, visited[idx], "cell (%d,%d) visited twice", gi, gj)
				visited[idx] = true

				assert.Equal(t, float32(idx), sub.Get(layout.Ints(i, j)))
			}
		}
	}

	for idx, seen := range visited {
		assert.True(t, seen, "cell %d never covered", idx)
	}
}

func TestEdgeTilesAreClipped(t *testing.T) {
	m, n := 7, 5
	tm, tn := 4, 3
	tt := iota2D(m, n)
	tiler := layout.RowMajorLayout(layout.ShapeOf(tm, tn))

	tiled := NewTiled(tt.View(), tiler)

	count := 0
	for tile, _, ok := tiled.Next(); ok; tile, _, ok = tiled.Next() {
		count++
		assert.LessOrEqual(t, tile.Len(0), tm)
		assert.LessOrEqual(t, tile.Len(1), tn)
		assert.LessOrEqual(t, tile.Start(0)+tile.Len(0), m)
		assert.LessOrEqual(t, tile.Start(1)+tile.Len(1), n)
	}

	// ceil(7/4) * ceil(5/3)
	assert.Equal(t, 4, count)
}

func TestSingleTileEqualsWholeView(t *testing.T) {
	m, n := 4, 4
	tt := iota2D(m, n)
	tiler := layout.RowMajorLayout(layout.ShapeOf(m, n))

	tiled := NewTiled(tt.View(), tiler)

	tile, sub, ok := tiled.Next()
	require.True(t, ok)
	assert.Equal(t, []int{0, 0}, tile.Starts())
	assert.Equal(t, []int{m, n}, tile.Lens())

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, float32(i*n+j), sub.Get(layout.Ints(i, j)))
		}
	}

	_, _, ok = tiled.Next()
	assert.False(t, ok, "expected exactly one tile")
}

func TestTiledMutWritesMatchFlatAssignment(t *testing.T) {
	m, n := 8, 6
	tt := Zeros[float32](layout.RowMajorLayout(layout.ShapeOf(m, n)))
	tiler := layout.RowMajorLayout(layout.ShapeOf(3, 4))

	tiled := NewTiledMut(tt.MutView(), tiler)
	for tile, sub, ok := tiled.Next(); ok; tile, sub, ok = tiled.Next() {
		for i := 0; i < tile.Len(0); i++ {
			for j := 0; j < tile.Len(1); j++ {
				row := tile.Start(0) + i
				col := tile.Start(1) + j
				sub.Set(layout.Ints(i, j), float32(row*n+col))
			}
		}
	}

	want := make([]float32, m*n)
	for i := range want {
		want[i] = float32(i)
	}
	assert.Equal(t, want, tt.Data())
}

func TestTiledOverHierarchicalBase(t *testing.T) {
	shape := layout.NewShape(layout.Nest(layout.Ints(4), layout.Ints(6)))
	data := make([]float32, 24)
	for i := range data {
		data[i] = float32(i)
	}
	tt := New(data, layout.RowMajorLayout(shape))
	tiler := layout.RowMajorLayout(layout.NewShape(layout.Nest(layout.Ints(2), layout.Ints(3))))

	tiled := NewTiled(tt.View(), tiler)

	visited := make([]bool, 24)
	for tile, sub, ok := tiled.Next(); ok; tile, sub, ok = tiled.Next() {
		for i := 0; i < tile.Len(0); i++ {
			for j := 0; j < tile.Len(1); j++ {
				idx := (tile.Start(0)+i)*6 + tile.Start(1) + j
				require.False(t, visited[idx])
				visited[idx] = true
				assert.Equal(t, float32(idx), sub.Get(layout.Ints(i, j)))
			}
		}
	}
	for _, seen := range visited {
		assert.True(t, seen)
	}
}
