package wfc

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/wavegrid/grid"
)

// removal is one pending consequence to propagate: id is no longer
// possible at cell.
type removal struct {
	cell int
	id   PatternID
}

// collapser owns all mutable state of a single attempt.
type collapser struct {
	wave  *Wave
	stats *GlobalStats
	rng   *rand.Rand

	n     int // pattern count
	cells int

	// neighbour[cell*NumDirections+d] is the adjacent cell index in
	// direction d under the chosen wrap mode, or -1 when none exists.
	neighbour []int

	// revAllowed[id][d] lists the patterns whose allowed-neighbour set in
	// direction d contains id.
	revAllowed [][]([]PatternID)

	// support[(cell*n+id)*NumDirections+d] counts the still-possible
	// patterns in the d-neighbour that accept id in direction d. An id
	// stays viable only while every existing neighbour direction keeps a
	// positive count.
	support []int32

	// effWeight is the observation weight: the pattern weight, or 1 for
	// unweighted patterns.
	effWeight []uint32

	// entropy bookkeeping per cell, over still-possible patterns.
	sumWeight     []uint64
	sumWeightLogW []float64

	queue []removal
}

// Collapse runs one solver attempt: it builds a fully uncertain wave over
// outputSize, applies the forbid rule, then alternates minimum-entropy
// observation with support-counting propagation until every cell commits
// to one pattern or a contradiction is found.
//
// Returns ErrNoPatterns for empty stats, grid.ErrEmptyGrid for a
// non-positive output size, and ErrContradiction when the attempt fails;
// retry with fresh randomness in that case (see package retry).
// The rng is the attempt's sole source of randomness.
func Collapse(stats *GlobalStats, outputSize grid.Size, wrapMode Wrap, forbid ForbidPattern, rng *rand.Rand) (*Wave, error) {
	if stats.NumPatterns() == 0 {
		return nil, ErrNoPatterns
	}
	if outputSize.Width <= 0 || outputSize.Height <= 0 {
		return nil, grid.ErrEmptyGrid
	}

	c, err := newCollapser(stats, outputSize, wrapMode, rng)
	if err != nil {
		return nil, err
	}
	if err := c.applyForbid(forbid); err != nil {
		return nil, err
	}
	if err := c.propagate(); err != nil {
		return nil, err
	}
	for {
		cell, ok := c.observe()
		if !ok {
			return c.wave, nil
		}
		if err := c.collapseCell(cell); err != nil {
			return nil, err
		}
		if err := c.propagate(); err != nil {
			return nil, err
		}
	}
}

func newCollapser(stats *GlobalStats, outputSize grid.Size, wrapMode Wrap, rng *rand.Rand) (*collapser, error) {
	n := stats.NumPatterns()
	wave := NewWave(stats, outputSize)
	cells := outputSize.Count()

	c := &collapser{
		wave:          wave,
		stats:         stats,
		rng:           rng,
		n:             n,
		cells:         cells,
		neighbour:     make([]int, cells*grid.NumDirections),
		revAllowed:    make([][]([]PatternID), n),
		support:       make([]int32, cells*n*grid.NumDirections),
		effWeight:     make([]uint32, n),
		sumWeight:     make([]uint64, cells),
		sumWeightLogW: make([]float64, cells),
	}

	// Neighbour topology under the wrap mode.
	for y := 0; y < outputSize.Height; y++ {
		for x := 0; x < outputSize.Width; x++ {
			cell := y*outputSize.Width + x
			for _, d := range grid.Directions {
				idx := cell*grid.NumDirections + int(d)
				nc, ok := wrapMode.WrapCoord(grid.Coord{X: x, Y: y}.Add(d.Offset()), outputSize)
				if ok {
					c.neighbour[idx] = nc.Y*outputSize.Width + nc.X
				} else {
					c.neighbour[idx] = -1
				}
			}
		}
	}

	// Reverse adjacency: who accepts id as a d-neighbour.
	for id := 0; id < n; id++ {
		c.revAllowed[id] = make([][]PatternID, grid.NumDirections)
	}
	for id := 0; id < n; id++ {
		for _, d := range grid.Directions {
			for _, other := range stats.AllowedNeighbours(PatternID(id), d) {
				c.revAllowed[other][d] = append(c.revAllowed[other][d], PatternID(id))
			}
		}
	}

	// Observation weights and per-cell entropy sums.
	var sumW uint64
	var sumWLogW float64
	for id := 0; id < n; id++ {
		w := stats.Weight(PatternID(id))
		if w == 0 {
			w = 1
		}
		c.effWeight[id] = w
		sumW += uint64(w)
		sumWLogW += float64(w) * math.Log(float64(w))
	}
	for cell := 0; cell < cells; cell++ {
		c.sumWeight[cell] = sumW
		c.sumWeightLogW[cell] = sumWLogW
	}

	// Initial support counts; directions without a neighbour impose no
	// constraint, but an empty allowed set toward an existing neighbour
	// rules the pattern out immediately.
	for id := 0; id < n; id++ {
		for _, d := range grid.Directions {
			allowed := int32(len(c.stats.AllowedNeighbours(PatternID(id), d)))
			for cell := 0; cell < cells; cell++ {
				c.support[(cell*n+int(id))*grid.NumDirections+int(d)] = allowed
			}
		}
	}
	for cell := 0; cell < cells; cell++ {
		for id := 0; id < n; id++ {
			for _, d := range grid.Directions {
				if c.neighbour[cell*grid.NumDirections+int(d)] < 0 {
					continue
				}
				if c.support[(cell*n+id)*grid.NumDirections+int(d)] == 0 {
					c.ban(cell, PatternID(id))

					break
				}
			}
		}
		if c.wave.numPossible[cell] == 0 {
			return nil, ErrContradiction
		}
	}

	return c, nil
}

// applyForbid removes every vetoed (cell, pattern) pair up front.
func (c *collapser) applyForbid(forbid ForbidPattern) error {
	if _, nothing := forbid.(ForbidNothing); nothing {
		return nil
	}
	size := c.wave.size
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			cell := y*size.Width + x
			for id := 0; id < c.n; id++ {
				if forbid.Forbid(grid.Coord{X: x, Y: y}, PatternID(id)) {
					c.ban(cell, PatternID(id))
				}
			}
			if c.wave.numPossible[cell] == 0 {
				return ErrContradiction
			}
		}
	}

	return nil
}

// ban marks id impossible at cell, updates entropy sums and queues the
// removal for propagation. Idempotent.
func (c *collapser) ban(cell int, id PatternID) {
	if !c.wave.remove(cell, id) {
		return
	}
	w := c.effWeight[id]
	c.sumWeight[cell] -= uint64(w)
	c.sumWeightLogW[cell] -= float64(w) * math.Log(float64(w))
	c.queue = append(c.queue, removal{cell: cell, id: id})
}

// propagate drains the removal queue, cascading support losses to
// neighbouring cells. Returns ErrContradiction when any cell runs out of
// candidates.
func (c *collapser) propagate() error {
	for len(c.queue) > 0 {
		r := c.queue[len(c.queue)-1]
		c.queue = c.queue[:len(c.queue)-1]
		for _, d := range grid.Directions {
			nc := c.neighbour[r.cell*grid.NumDirections+int(d)]
			if nc < 0 {
				continue
			}
			// The removed pattern sat in direction opposite(d) from nc's
			// perspective; every pattern that accepted it there loses one
			// unit of support.
			e := d.Opposite()
			for _, t2 := range c.revAllowed[r.id][e] {
				idx := (nc*c.n+int(t2))*grid.NumDirections + int(e)
				c.support[idx]--
				if c.support[idx] == 0 && c.wave.possible[nc*c.n+int(t2)] {
					c.ban(nc, t2)
					if c.wave.numPossible[nc] == 0 {
						return ErrContradiction
					}
				}
			}
		}
	}

	return nil
}

// observe picks the undecided cell with minimum Shannon entropy (over the
// effective weights of its candidates), breaking ties with rng noise.
// ok is false when every cell is decided.
func (c *collapser) observe() (cell int, ok bool) {
	best := -1
	bestEntropy := math.Inf(1)
	for i := 0; i < c.cells; i++ {
		if c.wave.numPossible[i] <= 1 {
			continue
		}
		sw := float64(c.sumWeight[i])
		entropy := math.Log(sw) - c.sumWeightLogW[i]/sw
		entropy += c.rng.Float64() * 1e-6
		if entropy < bestEntropy {
			bestEntropy = entropy
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}

	return best, true
}

// collapseCell commits cell to one weighted-random candidate and bans the
// rest.
func (c *collapser) collapseCell(cell int) error {
	target := c.rng.Int63n(int64(c.sumWeight[cell]))
	chosen := PatternID(-1)
	base := cell * c.n
	for id := 0; id < c.n; id++ {
		if !c.wave.possible[base+id] {
			continue
		}
		target -= int64(c.effWeight[id])
		if target < 0 {
			chosen = PatternID(id)

			break
		}
	}
	for id := 0; id < c.n; id++ {
		if PatternID(id) != chosen && c.wave.possible[base+id] {
			c.ban(cell, PatternID(id))
		}
	}
	if c.wave.numPossible[cell] == 0 {
		return ErrContradiction
	}

	return nil
}
