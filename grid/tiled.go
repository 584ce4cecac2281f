package grid

import (
	"fmt"
	"hash/fnv"

	"github.com/katalvlaran/wavegrid/orientation"
)

// TiledView is a read-only square window into a Grid, anchored at an
// offset, wrap-addressed, and re-sampled through an orientation
// transform. It borrows the grid and owns no data; lookups never fail.
type TiledView[T comparable] struct {
	grid   *Grid[T]
	offset Coord
	size   int // square side length
	orient orientation.Orientation
}

// NewTiledView creates a size×size view of g anchored at offset under the
// given orientation. size must be positive. Complexity: O(1).
func NewTiledView[T comparable](g *Grid[T], offset Coord, size int, o orientation.Orientation) TiledView[T] {
	return TiledView[T]{grid: g, offset: offset, size: size, orient: o}
}

// Offset returns the view's anchor coordinate. Complexity: O(1).
func (v TiledView[T]) Offset() Coord {
	return v.offset
}

// Size returns the square side length. Complexity: O(1).
func (v TiledView[T]) Size() int {
	return v.size
}

// Orientation returns the symmetry the view reads through.
// Complexity: O(1).
func (v TiledView[T]) Orientation() orientation.Orientation {
	return v.orient
}

// At returns the sample at logical cell c (both axes in [0,size)): the
// grid sample at the orientation-transformed, wrap-adjusted coordinate
// anchor+transform(c). Complexity: O(1).
func (v TiledView[T]) At(c Coord) T {
	tx, ty := v.orient.Transform(c.X, c.Y, v.size)

	return v.grid.AtWrapped(v.offset.Add(Coord{X: tx, Y: ty}))
}

// Equal reports whether every corresponding transformed sample of v and o
// compares equal. Views of differing sizes are never equal.
// Complexity: O(P²).
func (v TiledView[T]) Equal(o TiledView[T]) bool {
	if v.size != o.size {
		return false
	}
	for y := 0; y < v.size; y++ {
		for x := 0; x < v.size; x++ {
			c := Coord{X: x, Y: y}
			if v.At(c) != o.At(c) {
				return false
			}
		}
	}

	return true
}

// Signature returns a 64-bit content hash of the view, suitable for
// bucketing during deduplication. Equal views always share a signature;
// colliding views must still be confirmed with Equal. Complexity: O(P²).
func (v TiledView[T]) Signature() uint64 {
	h := fnv.New64a()
	for y := 0; y < v.size; y++ {
		for x := 0; x < v.size; x++ {
			// %v over a comparable value type renders deterministically.
			fmt.Fprintf(h, "%v|", v.At(Coord{X: x, Y: y}))
		}
	}

	return h.Sum64()
}
