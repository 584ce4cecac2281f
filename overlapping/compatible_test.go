package overlapping_test

import (
	"testing"

	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/katalvlaran/wavegrid/overlapping"
	"github.com/katalvlaran/wavegrid/wfc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompatible_OffsetPairing pins the per-direction offset pairing on
// the canonical two-colour fixture: with r=0, b=1 over
//
//	r b b
//	b r b
//
// the 2×2 windows anchored at (0,0) and (1,0) must be compatible East
// and North but not South or West.
func TestCompatible_OffsetPairing(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 1},
		{1, 0, 1},
	})
	p, err := overlapping.NewOriginalOrientation(g, 2)
	require.NoError(t, err)

	ids, err := p.IDGridOriginalOrientation()
	require.NoError(t, err)
	a := ids.At(grid.Coord{X: 0, Y: 0})
	b := ids.At(grid.Coord{X: 1, Y: 0})
	require.NotEqual(t, a, b)

	assert.True(t, p.Compatible(a, b, grid.East))
	assert.True(t, p.Compatible(a, b, grid.North))
	assert.False(t, p.Compatible(a, b, grid.South))
	assert.False(t, p.Compatible(a, b, grid.West))
}

// TestCompatible_SizeOnePatterns verifies the required edge case: 1×1
// patterns never overlap when placed adjacently, so every pair is
// compatible in every direction.
func TestCompatible_SizeOnePatterns(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2},
		{3, 4},
	})
	p, err := overlapping.NewOriginalOrientation(g, 1)
	require.NoError(t, err)
	require.Equal(t, 4, p.NumPatterns())

	for a := 0; a < p.NumPatterns(); a++ {
		for b := 0; b < p.NumPatterns(); b++ {
			for _, d := range grid.Directions {
				assert.True(t, p.Compatible(wfc.PatternID(a), wfc.PatternID(b), d),
					"Compatible(%d,%d,%s)", a, b, d)
			}
		}
	}
}

// TestCompatible_DirectionSymmetry verifies the reflexive-direction
// consistency that emerges from the offset pairing, across every pattern
// pair of a real extraction: East of A ↔ West of B, North ↔ South.
func TestCompatible_DirectionSymmetry(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3, 1},
		{2, 1, 1, 3},
		{3, 1, 2, 2},
		{1, 3, 2, 1},
	})
	p, err := overlapping.NewAllOrientations(g, 2)
	require.NoError(t, err)

	for a := 0; a < p.NumPatterns(); a++ {
		for b := 0; b < p.NumPatterns(); b++ {
			ia, ib := wfc.PatternID(a), wfc.PatternID(b)
			assert.Equal(t, p.Compatible(ia, ib, grid.East), p.Compatible(ib, ia, grid.West),
				"East(%d,%d) vs West(%d,%d)", a, b, b, a)
			assert.Equal(t, p.Compatible(ia, ib, grid.North), p.Compatible(ib, ia, grid.South),
				"North(%d,%d) vs South(%d,%d)", a, b, b, a)
		}
	}
}

// TestCompatible_Deterministic verifies purity: repeated queries agree.
func TestCompatible_Deterministic(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 1},
		{1, 0, 1},
	})
	p, err := overlapping.New(g, 2, orientation.All)
	require.NoError(t, err)

	for a := 0; a < p.NumPatterns(); a++ {
		for b := 0; b < p.NumPatterns(); b++ {
			for _, d := range grid.Directions {
				first := p.Compatible(wfc.PatternID(a), wfc.PatternID(b), d)
				for i := 0; i < 3; i++ {
					assert.Equal(t, first, p.Compatible(wfc.PatternID(a), wfc.PatternID(b), d))
				}
			}
		}
	}
}

// TestCompatible_SelfUniform verifies the trivial fixed point: the single
// pattern of a uniform grid is self-compatible in all directions.
func TestCompatible_SelfUniform(t *testing.T) {
	g := mustGrid(t, [][]int{
		{7, 7, 7},
		{7, 7, 7},
		{7, 7, 7},
	})
	p, err := overlapping.NewOriginalOrientation(g, 2)
	require.NoError(t, err)
	require.Equal(t, 1, p.NumPatterns())

	for _, d := range grid.Directions {
		assert.True(t, p.Compatible(0, 0, d))
	}
}
