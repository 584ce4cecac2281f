// Package overlapping learns a Wave Function Collapse pattern model from
// an example grid: it extracts every P×P window under the requested
// symmetry orientations, deduplicates identical windows into weighted
// patterns, decides which patterns may sit next to which, and packages
// the result as the global statistics the solver consumes.
//
// What:
//
//   - Patterns[T]: the extracted catalogue — a dense id-indexed table of
//     deduplicated Pattern entries, the retained input grid, and a
//     per-cell per-orientation id grid.
//   - Compatible: the adjacency test — two patterns may neighbour in a
//     cardinal direction iff they agree on the overlapping (P-1)-deep
//     sub-rectangle, with a fixed per-direction offset pairing.
//   - PatternDescriptions / GlobalStats: weights (occurrence counts) plus
//     materialized per-direction allowed-neighbour sets.
//
// Why:
//
//   - Texture synthesis from a single example: the catalogue and its
//     adjacency graph fully determine the constraint problem; the model
//     is learned once and reused read-only across any number of solver
//     attempts.
//
// Complexity:
//
//   - New:                  O(|orientations|×W×H×P²) extraction work.
//   - Compatible:           O(P²) per pair.
//   - PatternDescriptions:  O(N²×4×P²) pairwise scan over N patterns.
//
// Errors:
//
//   - ErrNonPositivePatternSize: pattern size < 1.
//   - ErrPatternSizeExceedsGrid: pattern size exceeds a grid dimension.
//   - ErrNoOrientations: the requested orientation set is empty.
//   - ErrMissingOriginal: IDGridOriginalOrientation without Original among
//     the requested orientations.
//
// All malformed-input errors are raised before any extraction work.
package overlapping
