// Package wavegrid synthesizes new 2D sample grids that locally resemble
// an input grid, using the Wave Function Collapse (WFC) technique: learn
// overlapping patterns from an example, then solve a constraint problem
// that assigns one pattern per output cell.
//
// 🚀 What is wavegrid?
//
//	A generic, pure-Go texture-synthesis toolkit built from small packages:
//		• grid        — generic 2D grids, coordinates, directions, tiled views
//		• orientation — the 8 square symmetries (rotations + reflections)
//		• overlapping — pattern extraction, dedup, adjacency compatibility, stats
//		• wfc         — the constraint solver: wave state, observation, propagation
//		• retry       — attempt policies: Forever, NumTimes, ParNumTimes
//		• wfcimage    — image-domain glue: pixels in, pixels out
//
// ✨ Why choose wavegrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic core – extraction and statistics are pure; only the
//     solver consumes randomness, always from a caller-supplied source
//   - Pure Go – no cgo, no hidden deps
//   - Generic – any comparable sample type, not just pixels
//
// Typical flow:
//
//	input grid → overlapping.New → GlobalStats → wfc.Collapse → output grid
//
// with retry policies wrapping the collapse, and wfcimage providing the
// same flow for image.Image in a single call (GenerateImage).
//
// Quick ASCII intuition — a 2×2 pattern slides over the input with
// wraparound, in every requested orientation:
//
//	┌──┬──┐ . .      every P×P window becomes a Pattern;
//	│ab│bc│ . .      equal windows merge, their count is the weight;
//	├──┼──┤ . .      neighbours that agree on the overlap stay compatible.
//	│de│ef│ . .
//	└──┴──┘ . .
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and error taxonomies.
package wavegrid
