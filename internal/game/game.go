// Package game implements the playable Double to 128 puzzle on top of the
// engine: a cursor, input handling, layout and rendering into a core.Screen.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/double128/internal/config"
	"github.com/vovakirdan/double128/internal/core"
	"github.com/vovakirdan/double128/internal/engine"
	"github.com/vovakirdan/double128/internal/grid"
)

// ID is the game identifier used in logs.
const ID = "double128"

// Game wraps an engine with everything the terminal needs.
type Game struct {
	engine  *engine.Engine
	display config.DisplayConfig
	palette config.Palette

	cursor grid.Coord
	last   engine.Result
	rounds int // games started on this instance, including the first

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game using the display and theme settings of cfg.
// Call Reset before the first Step or Render.
func New(cfg config.Config) *Game {
	return &Game{
		display: cfg.Display,
		palette: cfg.Theme.Palette(),
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.display.Title == "" {
		return "Double to 128"
	}
	return g.display.Title
}

// Reset starts over with a freshly seeded engine.
// A zero seed picks one from the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.ResetWithSource(cfg, rand.New(rand.NewSource(seed)))
}

// ResetWithSource starts over drawing pending values from src.
func (g *Game) ResetWithSource(cfg core.RuntimeConfig, src engine.Source) {
	g.engine = engine.New(src)
	g.cursor = grid.C(0, 0)
	g.last = engine.Result{}
	g.rounds = 1
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Clicked {
		return core.StepResult{State: g.State(), Changed: g.click(in.Click[0], in.Click[1])}
	}

	changed := false
	switch {
	case in.Has(core.ActionRestart):
		changed = g.newGame()
	case in.Has(core.ActionPress):
		changed = g.press(g.cursor)
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// click handles a pointer press at screen position (sx, sy).
func (g *Game) click(sx, sy int) bool {
	if g.layout().pending.Contains(sx, sy) {
		return g.newGame()
	}
	c, ok := g.CellAt(sx, sy)
	if !ok {
		return false
	}
	g.cursor = c
	return g.press(c)
}

// press plays the pending tile at c. Occupied cells and a full board are
// ignored, as they carry no press affordance.
func (g *Game) press(c grid.Coord) bool {
	if g.engine.IsGameOver() {
		return false
	}
	res := g.engine.Press(c.X, c.Y)
	if !res.Applied {
		return false
	}
	g.last = res
	return true
}

// newGame is only offered once the grid is full.
func (g *Game) newGame() bool {
	if !g.engine.IsGameOver() {
		return false
	}
	g.engine.NewGame()
	g.last = engine.Result{}
	g.rounds++
	return true
}

func (g *Game) moveCursor(dx, dy int) {
	next := g.cursor.Add(dx, dy)
	g.cursor = grid.C(
		core.Clamp(next.X, 0, engine.Size-1),
		core.Clamp(next.Y, 0, engine.Size-1),
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.engine.IsGameOver(),
		TooSmall: g.tooSmall,
	}
}

// Last returns the outcome of the most recent applied press.
func (g *Game) Last() engine.Result {
	return g.last
}

// Cursor returns the cell under the keyboard cursor.
func (g *Game) Cursor() grid.Coord {
	return g.cursor
}

// Engine exposes the underlying engine for read access.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}
