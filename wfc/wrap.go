package wfc

import "github.com/katalvlaran/wavegrid/grid"

// Wrap decides how coordinates behave at the edges of the output.
type Wrap interface {
	// WrapCoord normalizes c for a grid of the given size. ok is false
	// when c falls off the grid along a non-wrapping axis, meaning no
	// such neighbour exists.
	WrapCoord(c grid.Coord, s grid.Size) (norm grid.Coord, ok bool)
}

// WrapNone is a bounded output: nothing wraps.
type WrapNone struct{}

// WrapX wraps the horizontal axis only (a cylinder).
type WrapX struct{}

// WrapY wraps the vertical axis only (a cylinder).
type WrapY struct{}

// WrapXY wraps both axes (a torus); the output tiles seamlessly.
type WrapXY struct{}

// WrapCoord implements Wrap.
func (WrapNone) WrapCoord(c grid.Coord, s grid.Size) (grid.Coord, bool) {
	return c, s.Contains(c)
}

// WrapCoord implements Wrap.
func (WrapX) WrapCoord(c grid.Coord, s grid.Size) (grid.Coord, bool) {
	if c.Y < 0 || c.Y >= s.Height {
		return c, false
	}

	return s.WrapCoord(grid.Coord{X: c.X, Y: c.Y}), true
}

// WrapCoord implements Wrap.
func (WrapY) WrapCoord(c grid.Coord, s grid.Size) (grid.Coord, bool) {
	if c.X < 0 || c.X >= s.Width {
		return c, false
	}

	return s.WrapCoord(grid.Coord{X: c.X, Y: c.Y}), true
}

// WrapCoord implements Wrap.
func (WrapXY) WrapCoord(c grid.Coord, s grid.Size) (grid.Coord, bool) {
	return s.WrapCoord(c), true
}
