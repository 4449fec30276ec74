// Package grid provides a bounds-checked rectangular grid of integer cells
// and neighbourhood iteration that skips out-of-bounds positions.
package grid

// Empty is the value of a cell that holds nothing.
const Empty = 0

// Grid is a rectangular grid of integer cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	w     int
	h     int
	cells []int
}

// New creates a grid with the given dimensions, all cells empty.
// Non-positive dimensions produce a grid with no cells.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]int, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the value at the given coordinate.
// Returns Empty if out of bounds.
func (g *Grid) Get(c Coord) int {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[g.index(c)]
}

// Set stores a value at the given coordinate.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(c Coord, v int) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = v
	}
}

// Clear empties the cell at the given coordinate.
func (g *Grid) Clear(c Coord) {
	g.Set(c, Empty)
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// Neighbors returns the in-bounds cells around c described by shape,
// in shape order. The centre itself is never included.
func (g *Grid) Neighbors(c Coord, shape Shape) []Coord {
	out := make([]Coord, 0, len(shape))
	for _, d := range shape {
		n := c.AddCoord(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Matching returns the in-bounds neighbours of c (per shape) holding v.
func (g *Grid) Matching(c Coord, shape Shape, v int) []Coord {
	var out []Coord
	for _, n := range g.Neighbors(c, shape) {
		if g.Get(n) == v {
			out = append(out, n)
		}
	}
	return out
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, v := range g.cells {
		if v == Empty {
			count++
		}
	}
	return count
}

// IsFull returns true if no cell is empty.
func (g *Grid) IsFull() bool {
	return g.EmptyCount() == 0
}
