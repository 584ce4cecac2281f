package overlapping

import (
	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/wfc"
)

// PatternDescriptions derives, per pattern, the solver-facing
// description: the occurrence count as weight and, per cardinal
// direction, the materialized allowed-neighbour set. Sets are computed
// once here, never recomputed per solver step.
// Complexity: O(N²×4×P²).
func (p *Patterns[T]) PatternDescriptions() wfc.PatternTable[wfc.PatternDescription] {
	descriptions := make(wfc.PatternTable[wfc.PatternDescription], 0, p.table.Len())
	for _, pattern := range p.table {
		var allowed grid.DirectionTable[[]wfc.PatternID]
		for _, d := range grid.Directions {
			allowed.Set(d, p.CompatiblePatterns(pattern, d))
		}
		descriptions = append(descriptions, wfc.PatternDescription{
			Weight:            pattern.count,
			AllowedNeighbours: allowed,
		})
	}

	return descriptions
}

// GlobalStats packages the pattern descriptions into the immutable
// structure handed to the solving engine — the sole handoff artifact.
// Complexity: O(N²×4×P²).
func (p *Patterns[T]) GlobalStats() *wfc.GlobalStats {
	return wfc.NewGlobalStats(p.PatternDescriptions())
}
