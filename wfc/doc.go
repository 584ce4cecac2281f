// Package wfc is the constraint-solving engine of wavegrid: given global
// pattern statistics (weights plus per-direction allowed-neighbour sets),
// it assigns one pattern per output cell such that every adjacency
// constraint holds, or fails with a contradiction.
//
// What:
//
//   - PatternID, PatternTable[V]: dense pattern identifiers and tables.
//   - PatternDescription, GlobalStats: the immutable constraint model
//     handed over by extraction (see package overlapping).
//   - Wave, WaveCellRef: per-cell candidate state — a committed pattern,
//     an enumerable set of still-compatible (pattern, weight) candidates,
//     or none.
//   - Collapse: one solver attempt — minimum-entropy observation plus
//     support-counting propagation, honoring a wrap mode and a forbid
//     rule, consuming a caller-supplied randomness source.
//   - Wrap modes: WrapNone, WrapX, WrapY, WrapXY.
//   - ForbidPattern: per-cell per-pattern hard vetoes; ForbidNothing is
//     the default.
//
// Why:
//
//   - Texture synthesis, map generation, level layout: any problem of
//     filling a grid with locally consistent tiles.
//
// Concurrency:
//
//   - GlobalStats is immutable after construction and safely shareable
//     across any number of concurrent Collapse calls; each call owns all
//     of its mutable state. Randomness comes only from the rng argument.
//
// Complexity:
//
//   - Collapse: O(C×N×A) propagation work in the worst case, where C is
//     the cell count, N the pattern count and A the mean allowed-set
//     size; observation adds O(C×N) per collapsed cell.
//
// Errors:
//
//   - ErrContradiction: no assignment satisfies the constraints in this
//     attempt; callers retry (see package retry).
//   - ErrCellNotDecided: ChosenPatternID on a cell that is not committed
//     to exactly one pattern.
package wfc
