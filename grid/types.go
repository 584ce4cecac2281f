// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/wavegrid.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Coord addresses a cell by (X, Y); X grows eastward, Y grows southward.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of c and o. Complexity: O(1).
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Size holds rectangle dimensions in cells.
type Size struct {
	Width, Height int
}

// Count returns the number of cells in the rectangle. Complexity: O(1).
func (s Size) Count() int {
	return s.Width * s.Height
}

// Contains reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// WrapCoord maps c onto the rectangle by wrapping each axis modulo its
// extent; negative coordinates wrap to the far side. Complexity: O(1).
func (s Size) WrapCoord(c Coord) Coord {
	x := c.X % s.Width
	if x < 0 {
		x += s.Width
	}
	y := c.Y % s.Height
	if y < 0 {
		y += s.Height
	}

	return Coord{X: x, Y: y}
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	// North points toward decreasing Y.
	North Direction = iota
	// East points toward increasing X.
	East
	// South points toward increasing Y.
	South
	// West points toward decreasing X.
	West

	// NumDirections is the number of cardinal directions.
	NumDirections = 4
)

// Directions lists the cardinal directions in enumeration order.
var Directions = []Direction{North, East, South, West}

// directionOffsets holds the unit coordinate step for each direction.
var directionOffsets = [NumDirections]Coord{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Offset returns the unit step taken when moving in d. Complexity: O(1).
func (d Direction) Offset() Coord {
	return directionOffsets[d]
}

// Opposite returns the direction pointing the other way. Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "West"
	}
}

// DirectionTable stores one V per cardinal direction.
type DirectionTable[V any] [NumDirections]V

// Get returns the entry for d. Complexity: O(1).
func (t DirectionTable[V]) Get(d Direction) V {
	return t[d]
}

// Set records v under d. Complexity: O(1).
func (t *DirectionTable[V]) Set(d Direction, v V) {
	t[d] = v
}
