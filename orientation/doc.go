// Package orientation enumerates the 8 symmetries of a square — the
// identity, three clockwise rotations, and the diagonal reflections of
// each — and provides the coordinate transforms that realize them.
//
// What:
//
//   - Orientation: one of the 8 symmetries, with a deterministic order.
//   - Transform: maps a logical (x,y) within an n×n square to the source
//     coordinate that the symmetry reads from.
//   - Table[V]: a tiny presence-tracked map from Orientation to V, used
//     to record per-orientation pattern ids without allocating a map.
//
// Why:
//
//   - Pattern extraction considers every requested symmetry of every
//     window; which symmetries are "the same" is a caller decision.
//   - All and Only(...) give the two common orientation sets: all eight,
//     or just the identity.
//
// Transform convention (side n, indices 0..n-1):
//
//	Original:                       (x, y)
//	Clockwise90:                    (y, n-1-x)
//	Clockwise180:                   (n-1-x, n-1-y)
//	Clockwise270:                   (n-1-y, x)
//	DiagonallyFlipped:              (y, x)
//	DiagonallyFlippedClockwise90:   (n-1-x, y)
//	DiagonallyFlippedClockwise180:  (n-1-y, n-1-x)
//	DiagonallyFlippedClockwise270:  (x, n-1-y)
//
// Each DiagonallyFlippedClockwiseK is the main-diagonal flip applied
// after the K rotation; together the eight cover the full dihedral group
// of the square (identity, rotations, both diagonal flips, and the
// horizontal/vertical mirrors).
//
// Complexity: every operation is O(1).
package orientation
