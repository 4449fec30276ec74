package game

import (
	"github.com/vovakirdan/double128/internal/engine"
	"github.com/vovakirdan/double128/internal/grid"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Round   int // 1 for the first game, incremented by each new game
	Board   engine.Board
	Pending int
	Cursor  grid.Coord
	Empty   int // cells still pressable
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.IsGameOver():
		state = StateGameOver
	}

	return Snapshot{
		Round:   g.rounds,
		Board:   g.engine.Board(),
		Pending: g.engine.Pending(),
		Cursor:  g.cursor,
		Empty:   g.engine.EmptyCells(),
		State:   state,
	}
}
