package wfc

import "github.com/katalvlaran/wavegrid/grid"

// PatternID is a dense pattern identifier, contiguous from 0 in
// discovery order.
type PatternID int

// PatternTable is a dense array indexed by PatternID. It carries no
// semantic order beyond id order.
type PatternTable[V any] []V

// Len returns the number of entries. Complexity: O(1).
func (t PatternTable[V]) Len() int {
	return len(t)
}

// PatternDescription carries everything the solver needs to know about
// one pattern: its weight (0 means unweighted/uniform) and, per cardinal
// direction, the ids allowed to sit immediately in that direction.
type PatternDescription struct {
	// Weight is the pattern's relative frequency; 0 marks the pattern as
	// unweighted.
	Weight uint32
	// AllowedNeighbours holds, per direction, the compatible neighbour ids.
	AllowedNeighbours grid.DirectionTable[[]PatternID]
}

// GlobalStats is the immutable weight/adjacency structure that fully
// determines a constraint-satisfaction problem. It is built once by
// extraction and shared read-only across any number of solver attempts.
type GlobalStats struct {
	descriptions PatternTable[PatternDescription]
}

// NewGlobalStats wraps pattern descriptions into a GlobalStats. The
// descriptions slice is retained; callers must not mutate it afterwards.
func NewGlobalStats(descriptions PatternTable[PatternDescription]) *GlobalStats {
	return &GlobalStats{descriptions: descriptions}
}

// NumPatterns returns the number of described patterns. Complexity: O(1).
func (s *GlobalStats) NumPatterns() int {
	return len(s.descriptions)
}

// Weight returns the weight of id; 0 means unweighted. Complexity: O(1).
func (s *GlobalStats) Weight(id PatternID) uint32 {
	return s.descriptions[id].Weight
}

// AllowedNeighbours returns the ids allowed to sit immediately in d from
// id. The returned slice is shared; callers must not mutate it.
// Complexity: O(1).
func (s *GlobalStats) AllowedNeighbours(id PatternID, d grid.Direction) []PatternID {
	return s.descriptions[id].AllowedNeighbours.Get(d)
}
