package wfc

import "github.com/katalvlaran/wavegrid/grid"

// Wave is the per-cell candidate state of one solver attempt. A fresh
// wave considers every pattern possible everywhere; Collapse narrows it
// until each cell commits to exactly one pattern or a contradiction is
// found. Reconstruction reads a wave — complete or partial — through
// Cell.
type Wave struct {
	size        grid.Size
	numPatterns int
	stats       *GlobalStats
	possible    []bool // cell-major: index = cellIndex*numPatterns + pattern
	numPossible []int  // per cell
}

// NewWave builds a fully uncertain wave over outputSize: every pattern of
// stats is still possible in every cell. Useful for inspecting the model
// before any collapse, and as the starting state of Collapse.
// Complexity: O(C×N).
func NewWave(stats *GlobalStats, outputSize grid.Size) *Wave {
	n := stats.NumPatterns()
	cells := outputSize.Count()
	possible := make([]bool, cells*n)
	for i := range possible {
		possible[i] = true
	}
	numPossible := make([]int, cells)
	for i := range numPossible {
		numPossible[i] = n
	}

	return &Wave{
		size:        outputSize,
		numPatterns: n,
		stats:       stats,
		possible:    possible,
		numPossible: numPossible,
	}
}

// Size returns the wave dimensions. Complexity: O(1).
func (w *Wave) Size() grid.Size {
	return w.size
}

// cellIndex maps c to a row-major cell index. c must be in bounds.
func (w *Wave) cellIndex(c grid.Coord) int {
	return c.Y*w.size.Width + c.X
}

// Cell returns a read-only reference to the candidate state at c, which
// must be in bounds. Complexity: O(1).
func (w *Wave) Cell(c grid.Coord) WaveCellRef {
	return WaveCellRef{wave: w, cell: w.cellIndex(c)}
}

// remove marks id impossible at the given cell index, returning whether
// the cell changed. Internal to the solver.
func (w *Wave) remove(cell int, id PatternID) bool {
	i := cell*w.numPatterns + int(id)
	if !w.possible[i] {
		return false
	}
	w.possible[i] = false
	w.numPossible[cell]--

	return true
}

// WaveCellRef is a read-only view of one cell's candidate state.
type WaveCellRef struct {
	wave *Wave
	cell int
}

// NumCompatible returns how many patterns remain possible at the cell.
// Complexity: O(1).
func (r WaveCellRef) NumCompatible() int {
	return r.wave.numPossible[r.cell]
}

// ChosenPatternID returns the committed pattern id, or ErrCellNotDecided
// when the cell holds zero or several candidates. Complexity: O(N).
func (r WaveCellRef) ChosenPatternID() (PatternID, error) {
	if r.wave.numPossible[r.cell] != 1 {
		return 0, ErrCellNotDecided
	}
	base := r.cell * r.wave.numPatterns
	for id := 0; id < r.wave.numPatterns; id++ {
		if r.wave.possible[base+id] {
			return PatternID(id), nil
		}
	}

	return 0, ErrCellNotDecided
}

// PatternWeight pairs a still-compatible pattern with its weight.
type PatternWeight struct {
	ID     PatternID
	Weight uint32
}

// EnumerateCompatible lists the still-compatible patterns with their
// weights. weighted is true only when every listed pattern carries a
// meaningful (positive) weight; with weighted false the weights must not
// be used for averaging. Complexity: O(N).
func (r WaveCellRef) EnumerateCompatible() (patterns []PatternWeight, weighted bool) {
	base := r.cell * r.wave.numPatterns
	weighted = true
	for id := 0; id < r.wave.numPatterns; id++ {
		if !r.wave.possible[base+id] {
			continue
		}
		weight := r.wave.stats.Weight(PatternID(id))
		if weight == 0 {
			weighted = false
		}
		patterns = append(patterns, PatternWeight{ID: PatternID(id), Weight: weight})
	}
	if len(patterns) == 0 {
		weighted = false
	}

	return patterns, weighted
}

// SumCompatibleWeight sums the weights of the still-compatible patterns.
// Complexity: O(N).
func (r WaveCellRef) SumCompatibleWeight() uint64 {
	patterns, _ := r.EnumerateCompatible()
	var sum uint64
	for _, p := range patterns {
		sum += uint64(p.Weight)
	}

	return sum
}
