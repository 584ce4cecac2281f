package overlapping

import (
	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/wfc"
)

// compatibleOffsets fixes, per direction, the anchor offsets of the two
// overlapping sub-rectangles compared between pattern A and pattern B.
// The pairing is the compatibility contract: an alternate-but-plausible
// pairing would silently change which tilings are legal, so it is pinned
// here and by tests rather than derived.
var compatibleOffsets = [grid.NumDirections]struct{ a, b grid.Coord }{
	grid.North: {a: grid.Coord{X: 0, Y: 0}, b: grid.Coord{X: 0, Y: 1}},
	grid.South: {a: grid.Coord{X: 0, Y: 1}, b: grid.Coord{X: 0, Y: 0}},
	grid.East:  {a: grid.Coord{X: 1, Y: 0}, b: grid.Coord{X: 0, Y: 0}},
	grid.West:  {a: grid.Coord{X: 0, Y: 0}, b: grid.Coord{X: 1, Y: 0}},
}

// viewsCompatible reports whether pattern B (view b) may legally sit
// immediately in direction d from pattern A (view a). Size-1 patterns
// never overlap when placed adjacently, so everything is compatible.
// Pure and deterministic. Complexity: O(P²).
func viewsCompatible[T comparable](a, b grid.TiledView[T], d grid.Direction) bool {
	size := a.Size()
	if size == 1 {
		// patterns don't overlap, so everything is compatible
		return true
	}
	compareW, compareH := size, size
	switch d {
	case grid.North, grid.South:
		compareH = size - 1
	default:
		compareW = size - 1
	}
	offs := compatibleOffsets[d]
	for y := 0; y < compareH; y++ {
		for x := 0; x < compareW; x++ {
			c := grid.Coord{X: x, Y: y}
			if a.At(c.Add(offs.a)) != b.At(c.Add(offs.b)) {
				return false
			}
		}
	}

	return true
}

// Compatible reports whether pattern b may legally sit immediately in
// direction d from pattern a. Evaluated pairwise from tile contents; the
// relation is not symmetric by construction — query both directions when
// both are needed. Pure and deterministic. Complexity: O(P²).
func (p *Patterns[T]) Compatible(a, b wfc.PatternID, d grid.Direction) bool {
	return viewsCompatible(p.view(p.table[a]), p.view(p.table[b]), d)
}

// CompatiblePatterns returns every id allowed to sit immediately in
// direction d from pattern, in id order. Complexity: O(N×P²).
func (p *Patterns[T]) CompatiblePatterns(pattern *Pattern, d grid.Direction) []wfc.PatternID {
	view := p.view(pattern)
	var out []wfc.PatternID
	for _, other := range p.table {
		if viewsCompatible(view, p.view(other), d) {
			out = append(out, other.id)
		}
	}

	return out
}
