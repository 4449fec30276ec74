// Package engine implements the Double to 128 state machine: a 4x4 grid,
// a pending tile drawn from a weighted table, chained merges on placement
// and the 3x3 clear when a chain reaches 128.
//
// The engine has no dependencies on the terminal or on Bubble Tea; the
// presentation layer calls NewGame and Press and reads back Board, Pending
// and IsGameOver.
package engine

import (
	"math/rand"

	"github.com/vovakirdan/double128/internal/grid"
)

const (
	// Size is the board dimension.
	Size = 4

	// MaxValue is the chain value that triggers the 3x3 clear.
	// It never persists on the board.
	MaxValue = 128

	// maxMerges bounds the chain; starting from 2 it can reach 32.
	maxMerges = 4
)

// Board is a value copy of the grid, indexed [y][x].
type Board [Size][Size]int

// Result describes what a single Press did.
type Result struct {
	Applied  bool         // false when the press was a no-op
	Placed   int          // pending value that was played
	Value    int          // final chain value
	Merges   int          // number of doubling steps
	Exploded bool         // chain reached MaxValue and the 3x3 block was cleared
	Cleared  []grid.Coord // cells emptied by merges or the explosion
}

// Engine owns the grid, the pending value and the random source.
// It is not safe for concurrent use; each game session owns one.
type Engine struct {
	grid    *grid.Grid
	pending int
	src     Source
}

// New creates an engine drawing from src and starts a game.
func New(src Source) *Engine {
	e := &Engine{
		grid: grid.New(Size, Size),
		src:  src,
	}
	e.NewGame()
	return e
}

// NewSeeded creates an engine backed by math/rand seeded with seed.
func NewSeeded(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed)))
}

// NewGame empties the board and draws a fresh pending value.
// The random source is not reset.
func (e *Engine) NewGame() {
	e.grid.Reset()
	e.pending = Draw(e.src)
}

// Press plays the pending value into (x, y).
// Out-of-bounds or occupied cells leave the engine untouched.
func (e *Engine) Press(x, y int) Result {
	at := grid.C(x, y)
	if !e.grid.InBounds(at) || e.grid.Get(at) != grid.Empty {
		return Result{}
	}

	res := Result{Applied: true, Placed: e.pending}
	value := e.pending

	for range maxMerges {
		matches := e.grid.Matching(at, grid.Orthogonal, value)
		if len(matches) == 0 {
			break
		}
		for _, c := range matches {
			e.grid.Clear(c)
		}
		res.Cleared = append(res.Cleared, matches...)
		res.Merges++
		value *= 2
	}

	if value == MaxValue {
		for _, c := range e.grid.Neighbors(at, grid.Moore) {
			if e.grid.Get(c) != grid.Empty {
				res.Cleared = append(res.Cleared, c)
			}
			e.grid.Clear(c)
		}
		e.grid.Clear(at)
		res.Exploded = true
	} else {
		e.grid.Set(at, value)
	}

	res.Value = value
	e.pending = Draw(e.src)
	return res
}

// IsGameOver reports whether every cell is occupied.
func (e *Engine) IsGameOver() bool {
	return e.grid.IsFull()
}

// Pending returns the value the next press will place.
func (e *Engine) Pending() int {
	return e.pending
}

// Cell returns the value at (x, y), or 0 when out of bounds.
func (e *Engine) Cell(x, y int) int {
	return e.grid.Get(grid.C(x, y))
}

// Board returns a snapshot of the grid.
func (e *Engine) Board() Board {
	var b Board
	for y := range Size {
		for x := range Size {
			b[y][x] = e.grid.Get(grid.C(x, y))
		}
	}
	return b
}

// EmptyCells returns the number of cells that can still be pressed.
func (e *Engine) EmptyCells() int {
	return e.grid.EmptyCount()
}
