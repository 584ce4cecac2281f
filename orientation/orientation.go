package orientation

import "strconv"

// Orientation selects one of the 8 symmetries of a square.
type Orientation uint8

const (
	// Original is the identity symmetry.
	Original Orientation = iota
	// Clockwise90 rotates the square 90° clockwise.
	Clockwise90
	// Clockwise180 rotates the square 180°.
	Clockwise180
	// Clockwise270 rotates the square 270° clockwise.
	Clockwise270
	// DiagonallyFlipped mirrors the square across its main diagonal.
	DiagonallyFlipped
	// DiagonallyFlippedClockwise90 is DiagonallyFlipped applied after Clockwise90.
	DiagonallyFlippedClockwise90
	// DiagonallyFlippedClockwise180 is DiagonallyFlipped applied after Clockwise180.
	DiagonallyFlippedClockwise180
	// DiagonallyFlippedClockwise270 is DiagonallyFlipped applied after Clockwise270.
	DiagonallyFlippedClockwise270

	// NumOrientations is the size of the symmetry group.
	NumOrientations = 8
)

// All lists every symmetry in enumeration order.
var All = []Orientation{
	Original,
	Clockwise90,
	Clockwise180,
	Clockwise270,
	DiagonallyFlipped,
	DiagonallyFlippedClockwise90,
	DiagonallyFlippedClockwise180,
	DiagonallyFlippedClockwise270,
}

// Only returns an orientation set containing just the given symmetries.
// Convenience for the common Only(Original) case.
func Only(os ...Orientation) []Orientation {
	out := make([]Orientation, len(os))
	copy(out, os)

	return out
}

// Transform maps the logical coordinate (x,y) of an n×n square to the
// source-local coordinate the symmetry reads from. Inputs must satisfy
// 0 ≤ x,y < n; the output is in the same range. Complexity: O(1).
func (o Orientation) Transform(x, y, n int) (int, int) {
	m := n - 1
	switch o {
	case Clockwise90:
		return y, m - x
	case Clockwise180:
		return m - x, m - y
	case Clockwise270:
		return m - y, x
	case DiagonallyFlipped:
		return y, x
	case DiagonallyFlippedClockwise90:
		return m - x, y
	case DiagonallyFlippedClockwise180:
		return m - y, m - x
	case DiagonallyFlippedClockwise270:
		return x, m - y
	default:
		return x, y
	}
}

// String returns the symmetry name, "Orientation(n)" for unknown values.
func (o Orientation) String() string {
	switch o {
	case Original:
		return "Original"
	case Clockwise90:
		return "Clockwise90"
	case Clockwise180:
		return "Clockwise180"
	case Clockwise270:
		return "Clockwise270"
	case DiagonallyFlipped:
		return "DiagonallyFlipped"
	case DiagonallyFlippedClockwise90:
		return "DiagonallyFlippedClockwise90"
	case DiagonallyFlippedClockwise180:
		return "DiagonallyFlippedClockwise180"
	case DiagonallyFlippedClockwise270:
		return "DiagonallyFlippedClockwise270"
	default:
		return "Orientation(" + strconv.Itoa(int(o)) + ")"
	}
}
