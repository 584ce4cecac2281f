// Package overlapping defines the Pattern catalogue types and sentinel
// errors for the overlapping subpackage of github.com/katalvlaran/wavegrid.
package overlapping

import (
	"errors"

	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/katalvlaran/wavegrid/wfc"
)

// Sentinel errors for pattern extraction.
var (
	// ErrNonPositivePatternSize indicates a pattern size below 1.
	ErrNonPositivePatternSize = errors.New("overlapping: pattern size must be positive")
	// ErrPatternSizeExceedsGrid indicates a pattern size larger than a grid dimension.
	ErrPatternSizeExceedsGrid = errors.New("overlapping: pattern size must not exceed the input grid dimensions")
	// ErrNoOrientations indicates an empty requested orientation set.
	ErrNoOrientations = errors.New("overlapping: at least one orientation is required")
	// ErrMissingOriginal indicates Original was not among the requested orientations.
	ErrMissingOriginal = errors.New("overlapping: original orientation was not extracted")
)

// Pattern is one deduplicated tile of the catalogue: a dense id, the set
// of (coordinate) occurrences that produced identical content, the
// occurrence count used as weight, and the orientation of the canonical
// (first-seen) occurrence.
type Pattern struct {
	id     wfc.PatternID
	coords []grid.Coord
	count  uint32
	orient orientation.Orientation
}

// ID returns the dense pattern identifier. Complexity: O(1).
func (p *Pattern) ID() wfc.PatternID {
	return p.id
}

// Coord returns the canonical (first-seen) occurrence coordinate.
// Complexity: O(1).
func (p *Pattern) Coord() grid.Coord {
	return p.coords[0]
}

// Coords returns a copy of every occurrence coordinate in discovery
// order. Complexity: O(occurrences).
func (p *Pattern) Coords() []grid.Coord {
	out := make([]grid.Coord, len(p.coords))
	copy(out, p.coords)

	return out
}

// Count returns the occurrence count, used as the pattern's weight.
// Complexity: O(1).
func (p *Pattern) Count() uint32 {
	return p.count
}

// Orientation returns the canonical occurrence's orientation.
// Complexity: O(1).
func (p *Pattern) Orientation() orientation.Orientation {
	return p.orient
}

// ClearCount zeroes the occurrence count, marking the pattern unweighted
// for subsequent GlobalStats derivations. Complexity: O(1).
func (p *Pattern) ClearCount() {
	p.count = 0
}
