package overlapping

import (
	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/katalvlaran/wavegrid/wfc"
)

// Patterns is the learned pattern model of one input grid: the dense
// id-indexed pattern table, the retained grid, and the per-cell
// per-orientation id grid. Immutable once built (ClearCount excepted);
// safely shareable read-only across concurrent solver attempts.
type Patterns[T comparable] struct {
	table       wfc.PatternTable[*Pattern]
	patternSize int
	grid        *grid.Grid[T]
	idGrid      *grid.Grid[orientation.Table[wfc.PatternID]]
}

// New extracts the pattern model from g: for each requested orientation,
// for every coordinate in row-major order (wraparound makes every anchor
// valid), the P×P tiled view is deduplicated by content into the table;
// new content allocates the next sequential id and records the view's
// orientation as canonical; every occurrence appends its coordinate and
// increments the pattern count, and the id is recorded in the per-cell
// id grid.
//
// Returns ErrNonPositivePatternSize, ErrPatternSizeExceedsGrid or
// ErrNoOrientations before any extraction work when the input is
// malformed. Complexity: O(|orientations|×W×H×P²).
func New[T comparable](g *grid.Grid[T], patternSize int, orientations []orientation.Orientation) (*Patterns[T], error) {
	if patternSize < 1 {
		return nil, ErrNonPositivePatternSize
	}
	size := g.Size()
	if patternSize > size.Width || patternSize > size.Height {
		return nil, ErrPatternSizeExceedsGrid
	}
	if len(orientations) == 0 {
		return nil, ErrNoOrientations
	}

	idGrid, _ := grid.NewFunc(size, func(grid.Coord) orientation.Table[wfc.PatternID] {
		return orientation.Table[wfc.PatternID]{}
	})

	p := &Patterns[T]{
		patternSize: patternSize,
		grid:        g,
		idGrid:      idGrid,
	}

	// Content-keyed lookup lives only during construction; afterwards the
	// dense id-indexed table is all that persists. Buckets hold candidate
	// ids per content signature; equality inside a bucket is confirmed
	// structurally, so correctness never rests on the hash.
	buckets := make(map[uint64][]wfc.PatternID)
	for _, o := range orientations {
		for y := 0; y < size.Height; y++ {
			for x := 0; x < size.Width; x++ {
				coord := grid.Coord{X: x, Y: y}
				view := grid.NewTiledView(g, coord, patternSize, o)
				sig := view.Signature()

				id := wfc.PatternID(-1)
				for _, candidate := range buckets[sig] {
					if view.Equal(p.view(p.table[candidate])) {
						id = candidate

						break
					}
				}
				if id < 0 {
					id = wfc.PatternID(len(p.table))
					p.table = append(p.table, &Pattern{id: id, orient: o})
					buckets[sig] = append(buckets[sig], id)
				}

				pattern := p.table[id]
				pattern.coords = append(pattern.coords, coord)
				pattern.count++

				tbl := p.idGrid.At(coord)
				tbl.Insert(o, id)
				p.idGrid.Set(coord, tbl)
			}
		}
	}

	return p, nil
}

// NewAllOrientations extracts under all 8 symmetries.
func NewAllOrientations[T comparable](g *grid.Grid[T], patternSize int) (*Patterns[T], error) {
	return New(g, patternSize, orientation.All)
}

// NewOriginalOrientation extracts under the identity symmetry only.
func NewOriginalOrientation[T comparable](g *grid.Grid[T], patternSize int) (*Patterns[T], error) {
	return New(g, patternSize, orientation.Only(orientation.Original))
}

// view returns the canonical tiled view of pattern.
func (p *Patterns[T]) view(pattern *Pattern) grid.TiledView[T] {
	return grid.NewTiledView(p.grid, pattern.Coord(), p.patternSize, pattern.orient)
}

// Grid returns the retained input grid; treat it as read-only.
// Complexity: O(1).
func (p *Patterns[T]) Grid() *grid.Grid[T] {
	return p.grid
}

// PatternSize returns the square pattern side length. Complexity: O(1).
func (p *Patterns[T]) PatternSize() int {
	return p.patternSize
}

// NumPatterns returns the number of distinct patterns. Complexity: O(1).
func (p *Patterns[T]) NumPatterns() int {
	return p.table.Len()
}

// Pattern returns the catalogue entry for id, which must be a valid id of
// this extraction. Complexity: O(1).
func (p *Patterns[T]) Pattern(id wfc.PatternID) *Pattern {
	return p.table[id]
}

// PatternTopLeftValue returns the sample at the (0,0) logical cell of the
// pattern's canonical occurrence — the sample a cell resolves to when it
// commits to this pattern. Complexity: O(1).
func (p *Patterns[T]) PatternTopLeftValue(id wfc.PatternID) T {
	return p.view(p.table[id]).At(grid.Coord{X: 0, Y: 0})
}

// IDGrid returns a copy of the per-cell mapping from orientation to the
// pattern id anchored at that cell under that orientation.
// Complexity: O(W×H).
func (p *Patterns[T]) IDGrid() *grid.Grid[orientation.Table[wfc.PatternID]] {
	return p.idGrid.Clone()
}

// IDGridOriginalOrientation returns the per-cell pattern id under the
// identity symmetry, or ErrMissingOriginal when Original was not among
// the requested orientations. Complexity: O(W×H).
func (p *Patterns[T]) IDGridOriginalOrientation() (*grid.Grid[wfc.PatternID], error) {
	var missing bool
	out, err := grid.NewFunc(p.idGrid.Size(), func(c grid.Coord) wfc.PatternID {
		id, ok := p.idGrid.At(c).Get(orientation.Original)
		if !ok {
			missing = true
		}

		return id
	})
	if err != nil {
		return nil, err
	}
	if missing {
		return nil, ErrMissingOriginal
	}

	return out, nil
}
