// Copyright 2025 Tilelib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout is the public API for the hierarchical layout algebra:
// nested extent/stride Tuples, Shapes, Layouts with coordinate/offset
// mapping, the divide operations, and the grid tile iterators.
//
// Example:
//
//	l := layout.RowMajorLayout(layout.ShapeOf(8, 6))
//	tiler := layout.RowMajorLayout(layout.ShapeOf(3, 2))
//	it := l.TileIter(tiler)
//	for start, ok := it.Next(); ok; start, ok = it.Next() {
//	    // start is the coordinate of one full tile
//	}
package layout

import (
	"github.com/bikshand/tilelib/internal/layout"
)

// Tuple is a recursive integer structure representing hierarchical
// extents or strides.
type Tuple = layout.Tuple

// Shape is a Tuple interpreted as per-dimension element extents.
type Shape = layout.Shape

// Stride is a Tuple interpreted as per-dimension memory multipliers,
// tree-congruent with a Shape.
type Stride = layout.Stride

// Layout is a Shape+Stride pair defining the coordinate-to-offset
// mapping for a tensor.
type Layout = layout.Layout

// Policy derives a stride tree from a shape.
type Policy = layout.Policy

// GridIter enumerates tile start coordinates over an exact grid.
type GridIter = layout.GridIter

// RestIter reports the remainder block the exact grid excludes.
type RestIter = layout.RestIter

// Built-in stride policies.
var (
	RowMajor = layout.RowMajor
	ColMajor = layout.ColMajor
)

// Ints builds a leaf Tuple from a sequence of ints.
func Ints(vals ...int) Tuple { return layout.Ints(vals...) }

// Nest builds a branch Tuple from sub-Tuples.
func Nest(subs ...Tuple) Tuple { return layout.Nest(subs...) }

// NewShape wraps a Tuple of extents as a Shape.
func NewShape(dims Tuple) Shape { return layout.NewShape(dims) }

// ShapeOf builds a flat leaf Shape from plain N-D extents.
func ShapeOf(dims ...int) Shape { return layout.NewShape(layout.Ints(dims...)) }

// NewStride wraps a Tuple of multipliers as a Stride.
func NewStride(t Tuple) Stride { return layout.NewStride(t) }

// New constructs a Layout over shape with strides derived by policy.
func New(shape Shape, policy Policy) Layout { return layout.New(shape, policy) }

// RowMajorLayout constructs a row-major Layout over shape.
func RowMajorLayout(shape Shape) Layout { return layout.RowMajorLayout(shape) }

// ColMajorLayout constructs a column-major Layout over shape.
func ColMajorLayout(shape Shape) Layout { return layout.ColMajorLayout(shape) }

// WithShapeStride constructs a Layout from an arbitrary congruent
// shape/stride pair.
func WithShapeStride(shape Shape, stride Stride) Layout {
	return layout.WithShapeStride(shape, stride)
}

// LogicalDivide splits every dimension into (tile, remainder) parts.
func LogicalDivide(l, tiler Layout) Layout { return layout.LogicalDivide(l, tiler) }

// ZippedDivide groups the decomposition into a tile tree and a
// quotient rest tree.
func ZippedDivide(l, tiler Layout) Layout { return layout.ZippedDivide(l, tiler) }

// TiledDivide flattens the rest component of ZippedDivide by one level.
func TiledDivide(l, tiler Layout) Layout { return layout.TiledDivide(l, tiler) }

// FlatDivide fully flattens the decomposition into one leaf sequence.
func FlatDivide(l, tiler Layout) Layout { return layout.FlatDivide(l, tiler) }

// NewGridIter builds an odometer iterator over plain grid dimensions.
func NewGridIter(dims []int) *GridIter { return layout.NewGridIter(dims) }
