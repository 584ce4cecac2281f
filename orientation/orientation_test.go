package orientation_test

import (
	"testing"

	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/stretchr/testify/assert"
)

// TestTransform_PinnedTable pins the documented transform convention on a
// 3×3 square: each symmetry must read (0,0) and (1,0) from the expected
// source coordinates.
func TestTransform_PinnedTable(t *testing.T) {
	const n = 3
	cases := []struct {
		o                  orientation.Orientation
		originX, originY   int // Transform(0,0,n)
		rightofX, rightofY int // Transform(1,0,n)
	}{
		{orientation.Original, 0, 0, 1, 0},
		{orientation.Clockwise90, 0, 2, 0, 1},
		{orientation.Clockwise180, 2, 2, 1, 2},
		{orientation.Clockwise270, 2, 0, 2, 1},
		{orientation.DiagonallyFlipped, 0, 0, 0, 1},
		{orientation.DiagonallyFlippedClockwise90, 2, 0, 1, 0},
		{orientation.DiagonallyFlippedClockwise180, 2, 2, 2, 1},
		{orientation.DiagonallyFlippedClockwise270, 0, 2, 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.o.String(), func(t *testing.T) {
			x, y := tc.o.Transform(0, 0, n)
			assert.Equal(t, [2]int{tc.originX, tc.originY}, [2]int{x, y}, "Transform(0,0)")
			x, y = tc.o.Transform(1, 0, n)
			assert.Equal(t, [2]int{tc.rightofX, tc.rightofY}, [2]int{x, y}, "Transform(1,0)")
		})
	}
}

// TestTransform_Bijective verifies that every symmetry permutes the n×n
// lattice: all n² outputs are distinct and in range.
func TestTransform_Bijective(t *testing.T) {
	const n = 4
	for _, o := range orientation.All {
		seen := make(map[[2]int]bool, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				tx, ty := o.Transform(x, y, n)
				assert.True(t, tx >= 0 && tx < n && ty >= 0 && ty < n,
					"%s: Transform(%d,%d) out of range: (%d,%d)", o, x, y, tx, ty)
				seen[[2]int{tx, ty}] = true
			}
		}
		assert.Len(t, seen, n*n, "%s must permute the lattice", o)
	}
}

// TestAll_CoversGroup checks that All lists 8 distinct symmetries.
func TestAll_CoversGroup(t *testing.T) {
	assert.Len(t, orientation.All, orientation.NumOrientations)
	seen := make(map[orientation.Orientation]bool)
	for _, o := range orientation.All {
		seen[o] = true
	}
	assert.Len(t, seen, orientation.NumOrientations, "All must not repeat symmetries")
}

// TestTable_InsertGetLen exercises the presence-tracked table.
func TestTable_InsertGetLen(t *testing.T) {
	var tbl orientation.Table[int]

	_, ok := tbl.Get(orientation.Original)
	assert.False(t, ok, "empty table has no entries")
	assert.Equal(t, 0, tbl.Len())

	tbl.Insert(orientation.Original, 7)
	tbl.Insert(orientation.Clockwise90, 9)
	tbl.Insert(orientation.Original, 8) // replace

	v, ok := tbl.Get(orientation.Original)
	assert.True(t, ok)
	assert.Equal(t, 8, v, "Insert must replace")
	v, ok = tbl.Get(orientation.Clockwise90)
	assert.True(t, ok)
	assert.Equal(t, 9, v)
	_, ok = tbl.Get(orientation.Clockwise180)
	assert.False(t, ok)
	assert.Equal(t, 2, tbl.Len())
}
