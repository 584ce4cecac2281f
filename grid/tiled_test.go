package grid_test

import (
	"testing"

	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asymmetric 3×3 fixture: no two symmetries read the same content.
func asymmetricGrid(t *testing.T) *grid.Grid[int] {
	t.Helper()
	g, err := grid.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	return g
}

// TestTiledView_OriginalReadsWindow verifies a plain window read.
func TestTiledView_OriginalReadsWindow(t *testing.T) {
	g := asymmetricGrid(t)
	v := grid.NewTiledView(g, grid.Coord{X: 1, Y: 1}, 2, orientation.Original)

	assert.Equal(t, 5, v.At(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, 6, v.At(grid.Coord{X: 1, Y: 0}))
	assert.Equal(t, 8, v.At(grid.Coord{X: 0, Y: 1}))
	assert.Equal(t, 9, v.At(grid.Coord{X: 1, Y: 1}))
}

// TestTiledView_WrapAddressing verifies that views anchored at the edge
// wrap around both axes, making every anchor valid.
func TestTiledView_WrapAddressing(t *testing.T) {
	g := asymmetricGrid(t)
	v := grid.NewTiledView(g, grid.Coord{X: 2, Y: 2}, 2, orientation.Original)

	assert.Equal(t, 9, v.At(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, 7, v.At(grid.Coord{X: 1, Y: 0}), "x wraps")
	assert.Equal(t, 3, v.At(grid.Coord{X: 0, Y: 1}), "y wraps")
	assert.Equal(t, 1, v.At(grid.Coord{X: 1, Y: 1}), "both wrap")
}

// TestTiledView_Clockwise90 verifies the rotated read of a full window.
func TestTiledView_Clockwise90(t *testing.T) {
	g := asymmetricGrid(t)
	v := grid.NewTiledView(g, grid.Coord{X: 0, Y: 0}, 3, orientation.Clockwise90)

	// Transform(x,y) = (y, 2-x): column 0 of the view is the bottom row
	// of the source read upward.
	assert.Equal(t, 7, v.At(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, 4, v.At(grid.Coord{X: 1, Y: 0}))
	assert.Equal(t, 1, v.At(grid.Coord{X: 2, Y: 0}))
	assert.Equal(t, 8, v.At(grid.Coord{X: 0, Y: 1}))
}

// TestTiledView_Equal verifies content equality across distinct anchors
// and orientations, including the symmetric-content case.
func TestTiledView_Equal(t *testing.T) {
	uniform, err := grid.New([][]int{
		{7, 7},
		{7, 7},
	})
	require.NoError(t, err)

	a := grid.NewTiledView(uniform, grid.Coord{X: 0, Y: 0}, 2, orientation.Original)
	b := grid.NewTiledView(uniform, grid.Coord{X: 1, Y: 1}, 2, orientation.Clockwise180)
	assert.True(t, a.Equal(b), "uniform windows are equal under any anchor/orientation")

	g := asymmetricGrid(t)
	c := grid.NewTiledView(g, grid.Coord{X: 0, Y: 0}, 2, orientation.Original)
	d := grid.NewTiledView(g, grid.Coord{X: 1, Y: 0}, 2, orientation.Original)
	assert.False(t, c.Equal(d), "shifted windows of asymmetric content differ")

	small := grid.NewTiledView(g, grid.Coord{X: 0, Y: 0}, 1, orientation.Original)
	assert.False(t, c.Equal(small), "differing sizes are never equal")
}

// TestTiledView_SignatureMatchesEquality verifies equal views share a
// signature and that the signature is stable across calls.
func TestTiledView_SignatureMatchesEquality(t *testing.T) {
	g := asymmetricGrid(t)

	// Original at (0,0) and DiagonallyFlipped read transposed content;
	// build a second grid holding the transpose so contents match.
	tg, err := grid.New([][]int{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	})
	require.NoError(t, err)

	a := grid.NewTiledView(g, grid.Coord{X: 0, Y: 0}, 3, orientation.Original)
	b := grid.NewTiledView(tg, grid.Coord{X: 0, Y: 0}, 3, orientation.DiagonallyFlipped)
	require.True(t, a.Equal(b), "transposed grid under diagonal flip restores content")

	assert.Equal(t, a.Signature(), b.Signature(), "equal views must share a signature")
	assert.Equal(t, a.Signature(), a.Signature(), "signature must be stable")

	c := grid.NewTiledView(g, grid.Coord{X: 1, Y: 0}, 3, orientation.Original)
	assert.NotEqual(t, a.Signature(), c.Signature(), "distinct content should hash apart")
}
