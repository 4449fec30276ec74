package grid

import "fmt"

// Coord represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AddCoord returns the sum of two coordinates.
func (c Coord) AddCoord(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Shape is a set of (dx, dy) offsets describing a neighbourhood.
type Shape []Coord

// Orthogonal is the von Neumann neighbourhood: up, left, down, right.
var Orthogonal = Shape{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
}

// Moore is the full 8-cell neighbourhood, orthogonals first.
var Moore = Shape{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
}
