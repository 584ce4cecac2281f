package wfc

import "github.com/katalvlaran/wavegrid/grid"

// ForbidPattern is a hard per-cell per-pattern constraint applied before
// an attempt starts, e.g. to pin specific border patterns.
// Implementations must be safe for concurrent use when handed to a
// parallel retry policy.
type ForbidPattern interface {
	// Forbid reports whether id must be vetoed at cell c.
	Forbid(c grid.Coord, id PatternID) bool
}

// ForbidNothing vetoes no pattern anywhere; the default rule.
type ForbidNothing struct{}

// Forbid implements ForbidPattern.
func (ForbidNothing) Forbid(grid.Coord, PatternID) bool {
	return false
}

// ForbidFunc adapts a plain function to the ForbidPattern capability.
type ForbidFunc func(c grid.Coord, id PatternID) bool

// Forbid implements ForbidPattern.
func (f ForbidFunc) Forbid(c grid.Coord, id PatternID) bool {
	return f(c, id)
}
