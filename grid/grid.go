package grid

// Grid is a rectangular array of samples addressed by (x,y) coordinates
// in [0,Width)×[0,Height). Construction deep-copies its input; readers
// must treat a built grid as immutable.
type Grid[T comparable] struct {
	size  Size
	cells []T // row-major, index = y*Width + x
}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed as
// rows[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]T, 0, w*h)
	for y := 0; y < h; y++ {
		cells = append(cells, rows[y]...)
	}

	return &Grid[T]{size: Size{Width: w, Height: h}, cells: cells}, nil
}

// NewFunc constructs a Grid of the given size by evaluating fn at every
// coordinate in row-major order. Returns ErrEmptyGrid for non-positive
// dimensions. Complexity: O(W×H).
func NewFunc[T comparable](size Size, fn func(Coord) T) (*Grid[T], error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, 0, size.Count())
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			cells = append(cells, fn(Coord{X: x, Y: y}))
		}
	}

	return &Grid[T]{size: size, cells: cells}, nil
}

// Size returns the grid dimensions. Complexity: O(1).
func (g *Grid[T]) Size() Size {
	return g.size
}

// InBounds reports whether c lies within the grid. Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return g.size.Contains(c)
}

// index maps c to a row-major index: Y*Width + X. c must be in bounds.
func (g *Grid[T]) index(c Coord) int {
	return c.Y*g.size.Width + c.X
}

// At returns the sample at c, which must be in bounds. Complexity: O(1).
func (g *Grid[T]) At(c Coord) T {
	return g.cells[g.index(c)]
}

// AtWrapped returns the sample at c after wrapping each axis modulo the
// grid size; every coordinate is valid. Complexity: O(1).
func (g *Grid[T]) AtWrapped(c Coord) T {
	return g.cells[g.index(g.size.WrapCoord(c))]
}

// Set stores v at c, which must be in bounds. Intended for grid
// construction only; never mutate a grid once views borrow it.
// Complexity: O(1).
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[g.index(c)] = v
}

// Clone returns a deep copy of the grid. Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{size: g.size, cells: cells}
}

// ForEach invokes fn for every cell in row-major order.
// Complexity: O(W×H).
func (g *Grid[T]) ForEach(fn func(Coord, T)) {
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			c := Coord{X: x, Y: y}
			fn(c, g.cells[g.index(c)])
		}
	}
}
