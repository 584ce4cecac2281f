// Package grid provides generic 2D sample storage and the read-only,
// wrap-addressed, orientation-transformed views that pattern extraction
// is built on.
//
// What:
//
//   - Coord, Size: integer lattice coordinates and rectangle dimensions.
//   - Direction: the four cardinal directions with offsets and opposites,
//     plus DirectionTable for dense per-direction storage.
//   - Grid[T]: a rectangular array of samples, deep-copied on
//     construction and treated as immutable by every reader.
//   - TiledView[T]: a P×P window into a Grid, anchored at an offset,
//     wrap-addressed (coordinates outside the grid wrap modulo its size)
//     and re-sampled through an orientation transform. Views borrow the
//     grid; they own no data and never fail a lookup.
//
// Why:
//
//   - Texture synthesis slides a fixed-size window over every cell of the
//     input under every requested symmetry; wraparound makes every anchor
//     valid and equality of window contents drives deduplication.
//
// Complexity:
//
//   - New:            O(W×H) time and memory (deep copy).
//   - At / Set:       O(1).
//   - TiledView.At:   O(1).
//   - TiledView.Equal / Signature: O(P²).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
