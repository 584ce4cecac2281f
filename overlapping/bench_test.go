package overlapping_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/overlapping"
)

// randomGrid builds a deterministic pseudo-random n×n grid with values
// in [0,colours).
func randomGrid(b *testing.B, n, colours int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(colours)
		}
		rows[y] = row
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}

	return g
}

// BenchmarkNew measures extraction under all 8 orientations of a 64×64
// four-colour grid with pattern size 3.
// Complexity: O(8×W×H×P²).
func BenchmarkNew(b *testing.B) {
	g := randomGrid(b, 64, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := overlapping.NewAllOrientations(g, 3); err != nil {
			b.Fatalf("extraction failed: %v", err)
		}
	}
}

// BenchmarkGlobalStats measures the O(N²×4×P²) pairwise compatibility
// scan on a 32×32 two-colour grid.
func BenchmarkGlobalStats(b *testing.B) {
	g := randomGrid(b, 32, 2)
	p, err := overlapping.NewOriginalOrientation(g, 3)
	if err != nil {
		b.Fatalf("setup extraction failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.GlobalStats()
	}
}
