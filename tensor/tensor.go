// Copyright 2025 Tilelib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API for buffers, zero-copy views and
// disjoint tile partitioning over the layout algebra.
//
// A Tensor owns its buffer; Views and MutViews are non-owning windows
// that must not outlive it. Tiled partitioning yields pairwise-disjoint
// sub-views, the property that makes external per-tile parallelism
// sound.
//
// Example:
//
//	l := layout.RowMajorLayout(layout.ShapeOf(8, 6))
//	t := tensor.Zeros[float32](l)
//	tiler := layout.RowMajorLayout(layout.ShapeOf(3, 4))
//	tiled := tensor.NewTiledMut(t.MutView(), tiler)
//	for tile, sub, ok := tiled.Next(); ok; tile, sub, ok = tiled.Next() {
//	    _ = tile // start/length descriptor, clipped at the edges
//	    _ = sub  // mutable zero-copy window
//	}
package tensor

import (
	"github.com/bikshand/tilelib/internal/layout"
	"github.com/bikshand/tilelib/internal/tensor"
)

// Tensor owns a contiguous buffer plus an immutable Layout.
type Tensor[T any] = tensor.Tensor[T]

// View is a non-owning read window into a tensor.
type View[T any] = tensor.View[T]

// MutView is a non-owning mutable window into a tensor.
type MutView[T any] = tensor.MutView[T]

// Tile describes one hyper-rectangular sub-region: start coordinates
// plus per-dimension lengths.
type Tile = tensor.Tile

// Tiled is a lazy, single-pass sequence of (Tile, View) pairs.
type Tiled[T any] = tensor.Tiled[T]

// TiledMut is a lazy, single-pass sequence of (Tile, MutView) pairs.
type TiledMut[T any] = tensor.TiledMut[T]

// New wraps data with l, adopting the slice. Panics unless the buffer
// length equals l.Size().
func New[T any](data []T, l layout.Layout) *Tensor[T] {
	return tensor.New(data, l)
}

// Zeros allocates a zeroed tensor over l.
func Zeros[T any](l layout.Layout) *Tensor[T] {
	return tensor.Zeros[T](l)
}

// NewTiled partitions a read view by tiler into disjoint tiles.
func NewTiled[T any](base View[T], tiler layout.Layout) *Tiled[T] {
	return tensor.NewTiled(base, tiler)
}

// NewTiledMut partitions a mutable view by tiler into disjoint tiles.
func NewTiledMut[T any](base MutView[T], tiler layout.Layout) *TiledMut[T] {
	return tensor.NewTiledMut(base, tiler)
}

// Copy copies src into dst elementwise; the shapes must match.
func Copy[T any](dst MutView[T], src View[T]) {
	tensor.Copy(dst, src)
}
