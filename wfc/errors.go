package wfc

import "errors"

// Sentinel errors for solver operations.
var (
	// ErrContradiction indicates an attempt reached a cell with no
	// compatible pattern left; the attempt is unsalvageable and must be
	// retried with fresh randomness.
	ErrContradiction = errors.New("wfc: propagation contradiction")
	// ErrCellNotDecided indicates ChosenPatternID was asked of a cell that
	// is not committed to exactly one pattern.
	ErrCellNotDecided = errors.New("wfc: cell is not decided")
	// ErrNoPatterns indicates GlobalStats describes zero patterns.
	ErrNoPatterns = errors.New("wfc: global stats must describe at least one pattern")
)
