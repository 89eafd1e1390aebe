package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func divideFixture() (Layout, Layout) {
	l := RowMajorLayout(NewShape(Nest(Ints(8), Ints(6))))
	tiler := RowMajorLayout(NewShape(Nest(Ints(2), Ints(3))))
	return l, tiler
}

func TestLogicalDivide(t *testing.T) {
	l, tiler := divideFixture()
	got := LogicalDivide(l, tiler)
	assert.Equal(t, "((2,6),(3,3))", got.Shape().String())
}

func TestZippedDivide(t *testing.T) {
	l, tiler := divideFixture()
	got := ZippedDivide(l, tiler)
	assert.Equal(t, "((2,3),(4,2))", got.Shape().String())
}

func TestTiledDivide(t *testing.T) {
	l, tiler := divideFixture()
	got := TiledDivide(l, tiler)
	assert.Equal(t, "((2,3),4,2)", got.Shape().String())
}

func TestFlatDivide(t *testing.T) {
	l, tiler := divideFixture()
	got := FlatDivide(l, tiler)

	assert.Equal(t, "(2,3,4,2)", got.Shape().String())
	if diff := cmp.Diff([]int{2, 3, 4, 2}, got.Shape().Flatten()); diff != "" {
		t.Errorf("FlatDivide dims mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatDivideLeafOperands(t *testing.T) {
	l := RowMajorLayout(ShapeOf(8, 6))
	tiler := RowMajorLayout(ShapeOf(2, 3))
	got := FlatDivide(l, tiler)
	assert.Equal(t, "(2,3,4,2)", got.Shape().String())
}

func TestDividesAreRowMajorRestriped(t *testing.T) {
	l, tiler := divideFixture()
	got := FlatDivide(l, tiler)
	assert.True(t, got.IsContiguous())
	assert.Equal(t, "(24,8,2,1)", got.Stride().String())
}

func TestLogicalDivideMismatchPanics(t *testing.T) {
	l := RowMajorLayout(NewShape(Nest(Ints(8), Ints(6))))
	tiler := RowMajorLayout(NewShape(Nest(Ints(2))))
	assert.Panics(t, func() { LogicalDivide(l, tiler) })
}

func TestZippedDivideUsesIntegerQuotient(t *testing.T) {
	// 8 does not divide by 3; the quotient truncates and the remainder
	// is not represented at this level
	l := RowMajorLayout(ShapeOf(8, 6))
	tiler := RowMajorLayout(ShapeOf(3, 2))
	got := ZippedDivide(l, tiler)
	assert.Equal(t, "((3,2),(2,3))", got.Shape().String())
}
